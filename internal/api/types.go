// Package api holds the request and response shapes of the forum REST
// surface.
package api

import "github.com/s21platform/forum-service/internal/model"

type Error struct {
	Error string `json:"error"`
}

type CreateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateThreadResponse struct {
	Id        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type GetThreadsResponse struct {
	Threads []model.ThreadPreview `json:"threads"`
}

type GetThreadResponse struct {
	Thread  model.Thread  `json:"thread"`
	Replies []model.Reply `json:"replies"`
}

type CreateReplyRequest struct {
	Content       string  `json:"content"`
	ParentReplyId *string `json:"parent_reply_id,omitempty"`
}

type CreateReplyResponse struct {
	ReplyId   string `json:"reply_id"`
	CreatedAt string `json:"created_at"`
}

type DeleteReplyResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

type GetNotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkReadResponse struct {
	Modified int64 `json:"modified"`
	Unread   int64 `json:"unread"`
}

type MarkAllReadResponse struct {
	Modified int64 `json:"modified"`
}

type DeleteNotificationResponse struct {
	Deleted int64 `json:"deleted"`
	Unread  int64 `json:"unread"`
}

type BulkDeleteRequest struct {
	Ids []string `json:"ids"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
	Unread  int64 `json:"unread"`
}

type GetConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetFaqsResponse struct {
	Faqs []model.Faq `json:"faqs"`
}
