package models

import "time"

// Session links an issued token to the user it authenticates. The token
// is the primary lookup key; logout deletes the row.
type Session struct {
	UserID    string    `json:"userId" dynamodbav:"userId"`
	Token     string    `json:"token" dynamodbav:"token"`
	DeviceID  string    `json:"deviceId" dynamodbav:"deviceId"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" dynamodbav:"expiresAt"`
}
