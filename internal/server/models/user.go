package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt digest; the
// plaintext password is never stored, and the hash is excluded from
// JSON so it cannot leak through serialized responses.
type User struct {
	ID           string    `json:"id" dynamodbav:"id"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"passwordHash"`
	Name         string    `json:"name" dynamodbav:"name"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"createdAt"`
}
