package db

const countAttempts = `
SELECT COUNT(*)
FROM attempts
WHERE ip = $1 AND route = $2 AND created_at >= $3
`

const addAttempt = `
INSERT INTO attempts (ip, route, created_at)
VALUES ($1, $2, $3)
`
