package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
	"github.com/s21platform/forum-service/internal/pkg/tx"
)

const notificationsPageLimit = 100

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type conn interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the transaction of the current pipeline when one is
// open, otherwise the shared connection pool.
func (r *Repository) Chk(ctx context.Context) conn {
	if sqlxTx, ok := tx.FromContext(ctx); ok {
		return sqlxTx
	}

	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	sqlxTx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = sqlxTx.Rollback()
	}()

	if err := cb(tx.Inject(ctx, sqlxTx)); err != nil {
		return err
	}

	if err := sqlxTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LockThread serializes reply mutations of a single thread for the
// duration of the surrounding transaction. Append and cascade delete
// on the same thread therefore never interleave.
func (r *Repository) LockThread(ctx context.Context, threadID string) error {
	_, err := r.Chk(ctx).ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", threadID)
	if err != nil {
		return fmt.Errorf("failed to acquire thread lock: %w", err)
	}

	return nil
}

func (r *Repository) CreateThread(ctx context.Context, thread *model.Thread) error {
	query, args, err := sq.Insert("threads").
		Columns("id", "title", "content", "author", "created_at").
		Values(thread.ID, thread.Title, thread.Content, thread.Author, thread.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create thread: %v", err)
	}

	return nil
}

func (r *Repository) GetThreads(ctx context.Context) (*model.ThreadPreviewList, error) {
	query, args, err := sq.Select(
		"t.id",
		"t.title",
		"t.author",
		"t.created_at",
		"COUNT(r.id) AS reply_count",
	).
		From("threads t").
		LeftJoin("replies r ON r.thread_id = t.id").
		GroupBy("t.id").
		OrderBy("t.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var threads model.ThreadPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &threads, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %v", err)
	}

	return &threads, nil
}

func (r *Repository) GetThread(ctx context.Context, threadID string) (*model.Thread, error) {
	query, args, err := sq.Select("id", "title", "content", "author", "created_at").
		From("threads").
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thread model.Thread
	err = r.Chk(ctx).GetContext(ctx, &thread, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %v", err)
	}

	return &thread, nil
}

func (r *Repository) ThreadExists(ctx context.Context, threadID string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("threads").
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check thread existence: %v", err)
	}

	return exists, nil
}

func (r *Repository) GetThreadReplies(ctx context.Context, threadID string) (*model.ReplyList, error) {
	query, args, err := sq.Select("id", "thread_id", "author", "content", "parent_reply_id", "created_at").
		From("replies").
		Where(sq.Eq{"thread_id": threadID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var replies model.ReplyList
	err = r.Chk(ctx).SelectContext(ctx, &replies, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread replies: %v", err)
	}

	return &replies, nil
}

func (r *Repository) GetThreadReplyRefs(ctx context.Context, threadID string) ([]model.ReplyRef, error) {
	query, args, err := sq.Select("id", "parent_reply_id", "author").
		From("replies").
		Where(sq.Eq{"thread_id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var refs []model.ReplyRef
	err = r.Chk(ctx).SelectContext(ctx, &refs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get reply refs: %v", err)
	}

	return refs, nil
}

func (r *Repository) SaveReply(ctx context.Context, reply *model.Reply) error {
	query, args, err := sq.Insert("replies").
		Columns("id", "thread_id", "author", "content", "parent_reply_id", "created_at").
		Values(reply.ID, reply.ThreadID, reply.Author, reply.Content, reply.ParentReplyID, reply.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save reply: %v", err)
	}

	return nil
}

func (r *Repository) DeleteReplies(ctx context.Context, threadID string, replyIDs []uuid.UUID) (int64, error) {
	if len(replyIDs) == 0 {
		return 0, nil
	}

	query, args, err := sq.Delete("replies").
		Where(sq.Eq{"thread_id": threadID}).
		Where(sq.Eq{"id": replyIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete replies: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return deleted, nil
}

func (r *Repository) CreateNotification(ctx context.Context, notification *model.Notification) error {
	query, args, err := sq.Insert("notifications").
		Columns("id", "to_user_id", "from_user_id", "thread_id", "reply_id", "message", "read", "created_at").
		Values(
			notification.ID,
			notification.ToUserID,
			notification.FromUserID,
			notification.ThreadID,
			notification.ReplyID,
			notification.Message,
			notification.Read,
			notification.CreatedAt,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create notification: %v", err)
	}

	return nil
}

func (r *Repository) GetNotifications(ctx context.Context, toUserID string) (*model.NotificationList, error) {
	query, args, err := sq.Select("id", "to_user_id", "from_user_id", "thread_id", "reply_id", "message", "read", "created_at").
		From("notifications").
		Where(sq.Eq{"to_user_id": toUserID}).
		OrderBy("created_at DESC").
		Limit(notificationsPageLimit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications model.NotificationList
	err = r.Chk(ctx).SelectContext(ctx, &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %v", err)
	}

	return &notifications, nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, toUserID string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{
			"to_user_id": toUserID,
			"read":       false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %v", err)
	}

	return count, nil
}

// MarkNotificationRead flips a single notification to read, scoped to
// its owner. Already-read notifications match zero rows, which keeps
// the operation idempotent.
func (r *Repository) MarkNotificationRead(ctx context.Context, notificationID, toUserID string) (int64, error) {
	query, args, err := sq.Update("notifications").
		Set("read", true).
		Where(sq.Eq{
			"id":         notificationID,
			"to_user_id": toUserID,
			"read":       false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notification read: %v", err)
	}

	modified, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return modified, nil
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, toUserID string) (int64, error) {
	query, args, err := sq.Update("notifications").
		Set("read", true).
		Where(sq.Eq{
			"to_user_id": toUserID,
			"read":       false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %v", err)
	}

	modified, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return modified, nil
}

func (r *Repository) DeleteNotification(ctx context.Context, notificationID, toUserID string) (int64, error) {
	query, args, err := sq.Delete("notifications").
		Where(sq.Eq{
			"id":         notificationID,
			"to_user_id": toUserID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notification: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return deleted, nil
}

func (r *Repository) DeleteNotifications(ctx context.Context, notificationIDs []string, toUserID string) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}

	query, args, err := sq.Delete("notifications").
		Where(sq.Eq{"id": notificationIDs}).
		Where(sq.Eq{"to_user_id": toUserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return deleted, nil
}

// PurgeUserNotifications removes every notification addressed to a
// user. Used by the user lifecycle worker when an account is blocked
// or deleted on the platform.
func (r *Repository) PurgeUserNotifications(ctx context.Context, toUserID string) (int64, error) {
	query, args, err := sq.Delete("notifications").
		Where(sq.Eq{"to_user_id": toUserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notifications: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return deleted, nil
}

func (r *Repository) GetFaqs(ctx context.Context) (*model.FaqList, error) {
	query, args, err := sq.Select("id", "question", "answer", "created_at").
		From("faqs").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var faqs model.FaqList
	err = r.Chk(ctx).SelectContext(ctx, &faqs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get faqs: %v", err)
	}

	return &faqs, nil
}
