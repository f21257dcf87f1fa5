package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationList []Notification

type Notification struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ToUserID   uuid.UUID  `db:"to_user_id" json:"to_user_id"`
	FromUserID *uuid.UUID `db:"from_user_id" json:"from_user_id,omitempty"`
	ThreadID   *uuid.UUID `db:"thread_id" json:"thread_id,omitempty"`
	ReplyID    *uuid.UUID `db:"reply_id" json:"reply_id,omitempty"`
	Message    string     `db:"message" json:"message"`
	Read       bool       `db:"read" json:"read"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
