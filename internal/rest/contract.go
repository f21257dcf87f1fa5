//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/forum-service/internal/api"
	"github.com/s21platform/forum-service/internal/model"
)

type DBRepo interface {
	CreateThread(ctx context.Context, thread *model.Thread) error
	GetThreads(ctx context.Context) (*model.ThreadPreviewList, error)
	GetThread(ctx context.Context, threadID string) (*model.Thread, error)
	ThreadExists(ctx context.Context, threadID string) (bool, error)
	GetThreadReplies(ctx context.Context, threadID string) (*model.ReplyList, error)
	GetThreadReplyRefs(ctx context.Context, threadID string) ([]model.ReplyRef, error)
	SaveReply(ctx context.Context, reply *model.Reply) error
	DeleteReplies(ctx context.Context, threadID string, replyIDs []uuid.UUID) (int64, error)
	LockThread(ctx context.Context, threadID string) error

	GetNotifications(ctx context.Context, toUserID string) (*model.NotificationList, error)
	CountUnreadNotifications(ctx context.Context, toUserID string) (int64, error)
	MarkNotificationRead(ctx context.Context, notificationID, toUserID string) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, toUserID string) (int64, error)
	DeleteNotification(ctx context.Context, notificationID, toUserID string) (int64, error)
	DeleteNotifications(ctx context.Context, notificationIDs []string, toUserID string) (int64, error)

	GetFaqs(ctx context.Context) (*model.FaqList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Notifier interface {
	ReplyCreated(ctx context.Context, reply *model.Reply, parentAuthor string, actor *model.UserInfo)
	ReplyDeleted(ctx context.Context, threadID string)
	PushUnreadCount(ctx context.Context, userUUID string, unread int64)
}

type Validator interface {
	ValidateCreateThread(req *api.CreateThreadRequest) error
	ValidateCreateReply(req *api.CreateReplyRequest) error
	ValidateBulkDelete(req *api.BulkDeleteRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userUUID string) (string, int64, error)
}
