package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrUnauthorized = errors.New("unauthorized")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToGetSession = errors.New("failed to get session from context")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrNoDeviceInfo = errors.New("no device info")
