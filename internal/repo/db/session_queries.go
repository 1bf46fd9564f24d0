package db

const createSession = `
INSERT INTO sessions (device_id, user_id, issued_at, expires_at, ip, device_label)
VALUES ($1, $2, $3, $4, $5, $6)
`

const getSession = `
SELECT device_id, user_id, issued_at, expires_at, ip, device_label
FROM sessions
WHERE device_id = $1 AND user_id = $2
`

const getSessionByDeviceID = `
SELECT device_id, user_id, issued_at, expires_at, ip, device_label
FROM sessions
WHERE device_id = $1
LIMIT 1
`

const listSessions = `
SELECT device_id, user_id, issued_at, expires_at, ip, device_label
FROM sessions
WHERE user_id = $1
ORDER BY issued_at
`

const replaceSession = `
UPDATE sessions
SET issued_at = $1, expires_at = $2, ip = $3, device_label = $4
WHERE device_id = $5 AND user_id = $6 AND issued_at = $7
`

const deleteSession = `
DELETE FROM sessions
WHERE device_id = $1 AND user_id = $2
`

const deleteSessionByDeviceID = `
DELETE FROM sessions
WHERE device_id = $1
`

const deleteOtherSessions = `
DELETE FROM sessions
WHERE user_id = $1 AND device_id <> $2
`
