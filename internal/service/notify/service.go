// Package notify fans a new reply out to notifications and realtime
// pushes. Every step is best-effort: nothing here may fail or delay the
// reply that triggered it, so errors are logged and swallowed at each
// step boundary.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
	"github.com/s21platform/forum-service/internal/pkg/mention"
)

type Service struct {
	repository DBRepo
	userClient UserClient
	broker     Broker
}

func New(repo DBRepo, userClient UserClient, broker Broker) *Service {
	return &Service{
		repository: repo,
		userClient: userClient,
		broker:     broker,
	}
}

// ReplyCreated runs the notification pipeline for a freshly saved
// reply: extract mentions, add the parent reply's author, resolve
// recipients, write one notification per recipient and push
// notification:new to each of them, then announce reply:new on the
// thread channel. Partial failure is accepted; per-recipient writes
// and pushes are independent and never retried.
func (s *Service) ReplyCreated(ctx context.Context, reply *model.Reply, parentAuthor string, actor *model.UserInfo) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ReplyCreated")

	candidates := mention.Extract(reply.Content)
	if parentAuthor != "" && parentAuthor != model.AnonymousAuthor {
		candidates = appendUnique(candidates, parentAuthor)
	}

	for _, recipient := range s.resolveRecipients(ctx, candidates, actor) {
		notification := &model.Notification{
			ID:        uuid.New(),
			ToUserID:  recipient,
			ThreadID:  &reply.ThreadID,
			ReplyID:   &reply.ID,
			Message:   fmt.Sprintf("%s mentioned you in a reply", reply.Author),
			CreatedAt: time.Now(),
		}
		if actor != nil {
			fromUUID, err := uuid.Parse(actor.UUID)
			if err == nil {
				notification.FromUserID = &fromUUID
			}
		}

		if err := s.repository.CreateNotification(ctx, notification); err != nil {
			logger.Error(fmt.Sprintf("failed to create notification for %s: %v", recipient, err))
			continue
		}

		err := s.broker.Publish(ctx, model.UserChannel(recipient.String()), model.EventNotificationNew, struct{}{})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to push notification:new to %s: %v", recipient, err))
		}
	}

	err := s.broker.Publish(ctx, model.ThreadChannel(reply.ThreadID.String()), model.EventReplyNew, model.ThreadPayload{
		ThreadID: reply.ThreadID.String(),
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to push reply:new to thread %s: %v", reply.ThreadID, err))
	}
}

// ReplyDeleted announces a cascade deletion on the thread channel so
// connected viewers re-fetch.
func (s *Service) ReplyDeleted(ctx context.Context, threadID string) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ReplyDeleted")

	err := s.broker.Publish(ctx, model.ThreadChannel(threadID), model.EventReplyDeleted, model.ThreadPayload{
		ThreadID: threadID,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to push reply:deleted to thread %s: %v", threadID, err))
	}
}

// PushUnreadCount publishes the owner's fresh unread counter after a
// read or delete mutation.
func (s *Service) PushUnreadCount(ctx context.Context, userUUID string, unread int64) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("PushUnreadCount")

	err := s.broker.Publish(ctx, model.UserChannel(userUUID), model.EventNotificationsUpdated, model.UnreadPayload{
		Unread: unread,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to push notifications:updated to %s: %v", userUUID, err))
	}
}

func (s *Service) resolveRecipients(ctx context.Context, candidates []string, actor *model.UserInfo) []uuid.UUID {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if len(candidates) == 0 {
		return nil
	}

	users, err := s.userClient.GetUsersByUsernames(ctx, candidates)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve mention candidates: %v", err))
		return nil
	}

	recipients := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		if actor != nil && u.UUID == actor.UUID {
			continue
		}

		recipientUUID, err := uuid.Parse(u.UUID)
		if err != nil {
			logger.Warn(fmt.Sprintf("skipping recipient with malformed uuid %q", u.UUID))
			continue
		}

		recipients = append(recipients, recipientUUID)
	}

	return recipients
}

func appendUnique(usernames []string, username string) []string {
	for _, existing := range usernames {
		if existing == username {
			return usernames
		}
	}

	return append(usernames, username)
}
