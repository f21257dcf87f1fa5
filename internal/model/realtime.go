package model

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const (
	EventNotificationNew      = "notification:new"
	EventNotificationsUpdated = "notifications:updated"
	EventReplyNew             = "reply:new"
	EventReplyDeleted         = "reply:deleted"

	ActionJoinThread  = "join:thread"
	ActionLeaveThread = "leave:thread"
)

func UserChannel(userUUID string) string {
	return fmt.Sprintf("user:%s", userUUID)
}

func ThreadChannel(threadID string) string {
	return fmt.Sprintf("thread:%s", threadID)
}

// RealtimeEvent is the envelope pushed to every subscriber of a channel.
type RealtimeEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

type UnreadPayload struct {
	Unread int64 `json:"unread"`
}

type ThreadPayload struct {
	ThreadID string `json:"threadId"`
}

// ClientCommand is what a connected client sends over the socket.
type ClientCommand struct {
	Action   string `json:"action"`
	ThreadID string `json:"thread_id"`
}

type ConnectClaims struct {
	jwt.RegisteredClaims
}
