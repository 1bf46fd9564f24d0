package config

import "time"

type ctxKey string

const (
	UidKey     ctxKey = "uid"
	SessionKey ctxKey = "session"
	IpKey      ctxKey = "ip"
	UaKey      ctxKey = "ua"
)

const (
	DefaultCacheTime = time.Hour
	ErrorSpanTag     = "error"
)

const (
	RefreshCookieName        = "refreshToken"
	ConfirmationCodeDuration = time.Minute * 10
	UnknownDeviceValue       = "unknown"
)
