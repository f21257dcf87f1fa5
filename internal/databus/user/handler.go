//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=handler.go
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/forum-service/internal/config"
)

const (
	eventUserBlocked = "user.blocked"
	eventUserDeleted = "user.deleted"
)

type DBRepo interface {
	PurgeUserNotifications(ctx context.Context, toUserID string) (int64, error)
}

type lifecycleMessage struct {
	UserUUID string `json:"user_uuid"`
	Event    string `json:"event"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler consumes user lifecycle events from the platform topic and
// keeps the notification store consistent: a blocked or deleted
// account loses its pending notifications.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserLifecycleHandler")

	var msg lifecycleMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal lifecycle message: %v", err))
		return
	}

	if msg.UserUUID == "" {
		logger.Warn("lifecycle message without user uuid, skipping")
		return
	}

	switch msg.Event {
	case eventUserBlocked, eventUserDeleted:
		purged, err := h.repository.PurgeUserNotifications(ctx, msg.UserUUID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to purge notifications for %s: %v", msg.UserUUID, err))
			return
		}
		logger.Info(fmt.Sprintf("purged %d notifications for user %s (%s)", purged, msg.UserUUID, msg.Event))
	}
}
