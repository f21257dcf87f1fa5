//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notify

import (
	"context"

	"github.com/s21platform/forum-service/internal/model"
)

type DBRepo interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	CountUnreadNotifications(ctx context.Context, toUserID string) (int64, error)
}

type UserClient interface {
	GetUsersByUsernames(ctx context.Context, usernames []string) ([]model.UserInfo, error)
}

type Broker interface {
	Publish(ctx context.Context, channel, event string, payload interface{}) error
}
