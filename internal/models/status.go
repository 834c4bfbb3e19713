package models

import "time"

// StatusCheck is a legacy healthcheck record kept for client compatibility.
type StatusCheck struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}
