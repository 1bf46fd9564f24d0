package db

const userGetByIDQ = `
SELECT 
	u.id, 
	u.login, 
	u.email, 
	u.password,
	u.confirmation_code,
	u.code_expires_at,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByLoginQ = `
SELECT 
	u.id, 
	u.login, 
	u.email, 
	u.password,
	u.confirmation_code,
	u.code_expires_at,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.login = $1
`

const userGetByEmailQ = `
SELECT 
	u.id, 
	u.login, 
	u.email, 
	u.password,
	u.confirmation_code,
	u.code_expires_at,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.email = $1
`

const userGetByCodeQ = `
SELECT 
	u.id, 
	u.login, 
	u.email, 
	u.password,
	u.confirmation_code,
	u.code_expires_at,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.confirmation_code = $1
`

const userCreateQ = `
INSERT INTO users (id, login, email, password, confirmation_code, code_expires_at, is_email_verified, created_at, updated_at) 
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
`

const userUpdateCodeQ = `
UPDATE users 
SET confirmation_code = $1, 
    code_expires_at = $2,
    updated_at = NOW()
WHERE email = $3
`

const userConfirmEmailQ = `
UPDATE users 
SET is_email_verified = TRUE,
    updated_at = NOW()
WHERE id = $1 AND confirmation_code = $2 AND is_email_verified = FALSE
`

const userUpdatePasswordQ = `
UPDATE users 
SET password = $1,
    updated_at = NOW()
WHERE id = $2 AND confirmation_code = $3
`
