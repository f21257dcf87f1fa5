package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/forum-service/internal/api"
	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
	"github.com/s21platform/forum-service/internal/pkg/replytree"
	"github.com/s21platform/forum-service/internal/pkg/tx"
)

var (
	errThreadNotFound = errors.New("thread not found")
	errReplyNotFound  = errors.New("reply not found")
	errInvalidParent  = errors.New("invalid parent reply")
)

type Handler struct {
	repository   DBRepo
	notifier     Notifier
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(
	repo DBRepo,
	notifier Notifier,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:   repo,
		notifier:     notifier,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThreads")

	threads, err := h.repository.GetThreads(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get threads: %v", err))
		h.writeError(w, "failed to get threads", http.StatusInternalServerError)
		return
	}

	response := api.GetThreadsResponse{
		Threads: *threads,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateThread")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get author identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req api.CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateThread(&req); err != nil {
		logger.Error(fmt.Sprintf("thread validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("thread validation failed: %v", err), http.StatusBadRequest)
		return
	}

	thread := model.Thread{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    actor.Username,
		CreatedAt: time.Now(),
	}

	if err := h.repository.CreateThread(r.Context(), &thread); err != nil {
		logger.Error(fmt.Sprintf("failed to create thread: %v", err))
		h.writeError(w, "failed to create thread", http.StatusInternalServerError)
		return
	}

	response := api.CreateThreadResponse{
		Id:        thread.ID.String(),
		CreatedAt: thread.CreatedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThread")

	threadID := chi.URLParam(r, "thread_id")
	if _, err := uuid.Parse(threadID); err != nil {
		h.writeError(w, "thread id is not valid", http.StatusBadRequest)
		return
	}

	thread, err := h.repository.GetThread(r.Context(), threadID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get thread: %v", err))
		h.writeError(w, "failed to get thread", http.StatusInternalServerError)
		return
	}

	if thread == nil {
		h.writeError(w, "thread not found", http.StatusNotFound)
		return
	}

	replies, err := h.repository.GetThreadReplies(r.Context(), threadID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get thread replies: %v", err))
		h.writeError(w, "failed to get thread replies", http.StatusInternalServerError)
		return
	}

	response := api.GetThreadResponse{
		Thread:  *thread,
		Replies: *replies,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// CreateReply appends a reply to a thread and, once the write is
// committed, hands the reply to the notification pipeline. The
// pipeline is best-effort and can never fail this request.
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateReply")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get author identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	threadID := chi.URLParam(r, "thread_id")
	threadUUID, err := uuid.Parse(threadID)
	if err != nil {
		h.writeError(w, "thread id is not valid", http.StatusBadRequest)
		return
	}

	var req api.CreateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateReply(&req); err != nil {
		logger.Error(fmt.Sprintf("reply validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reply validation failed: %v", err), http.StatusBadRequest)
		return
	}

	reply := model.Reply{
		ID:       uuid.New(),
		ThreadID: threadUUID,
		Author:   actor.Username,
		Content:  req.Content,
	}

	var parentAuthor string

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.LockThread(ctx, threadID); err != nil {
			return err
		}

		exists, err := h.repository.ThreadExists(ctx, threadID)
		if err != nil {
			return err
		}
		if !exists {
			return errThreadNotFound
		}

		if req.ParentReplyId != nil && *req.ParentReplyId != "" {
			parentUUID, err := uuid.Parse(*req.ParentReplyId)
			if err != nil {
				return errInvalidParent
			}

			refs, err := h.repository.GetThreadReplyRefs(ctx, threadID)
			if err != nil {
				return err
			}

			if err := replytree.ValidateParent(refs, parentUUID); err != nil {
				logger.Error(fmt.Sprintf("parent validation failed: %v", err))
				return errInvalidParent
			}

			if parent, ok := replytree.FindParent(refs, parentUUID); ok {
				parentAuthor = parent.Author
			}

			reply.ParentReplyID = &parentUUID
		}

		reply.CreatedAt = time.Now()

		return h.repository.SaveReply(ctx, &reply)
	})

	switch {
	case errors.Is(err, errThreadNotFound):
		h.writeError(w, "thread not found", http.StatusNotFound)
		return
	case errors.Is(err, errInvalidParent):
		h.writeError(w, "parent reply is not valid for this thread", http.StatusBadRequest)
		return
	case err != nil:
		logger.Error(fmt.Sprintf("failed to save reply: %v", err))
		h.writeError(w, "failed to save reply", http.StatusInternalServerError)
		return
	}

	h.notifier.ReplyCreated(r.Context(), &reply, parentAuthor, &actor)

	response := api.CreateReplyResponse{
		ReplyId:   reply.ID.String(),
		CreatedAt: reply.CreatedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusCreated)
}

// DeleteReplySubtree removes a reply together with every descendant.
// The delete-set is computed as a fixed point over parent references,
// so arbitrarily deep chains collapse in one pass regardless of
// storage order. Administrator only.
func (h *Handler) DeleteReplySubtree(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteReplySubtree")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if actor.Role != model.AdminRole {
		logger.Warn(fmt.Sprintf("user %s attempted cascade delete without admin role", actor.UUID))
		h.writeError(w, "administrator role required", http.StatusForbidden)
		return
	}

	threadID := chi.URLParam(r, "thread_id")
	if _, err := uuid.Parse(threadID); err != nil {
		h.writeError(w, "thread id is not valid", http.StatusBadRequest)
		return
	}

	replyID, err := uuid.Parse(chi.URLParam(r, "reply_id"))
	if err != nil {
		h.writeError(w, "reply id is not valid", http.StatusBadRequest)
		return
	}

	var deleted int64

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.LockThread(ctx, threadID); err != nil {
			return err
		}

		exists, err := h.repository.ThreadExists(ctx, threadID)
		if err != nil {
			return err
		}
		if !exists {
			return errThreadNotFound
		}

		refs, err := h.repository.GetThreadReplyRefs(ctx, threadID)
		if err != nil {
			return err
		}

		if _, ok := replytree.FindParent(refs, replyID); !ok {
			return errReplyNotFound
		}

		deleteSet := replytree.Closure(refs, replyID)

		deleted, err = h.repository.DeleteReplies(ctx, threadID, deleteSet)
		return err
	})

	switch {
	case errors.Is(err, errThreadNotFound):
		h.writeError(w, "thread not found", http.StatusNotFound)
		return
	case errors.Is(err, errReplyNotFound):
		h.writeError(w, "reply not found", http.StatusNotFound)
		return
	case err != nil:
		logger.Error(fmt.Sprintf("failed to delete reply subtree: %v", err))
		h.writeError(w, "failed to delete reply subtree", http.StatusInternalServerError)
		return
	}

	h.notifier.ReplyDeleted(r.Context(), threadID)

	response := api.DeleteReplyResponse{
		DeletedCount: deleted,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetNotifications")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	notifications, err := h.repository.GetNotifications(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get notifications: %v", err))
		h.writeError(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	response := api.GetNotificationsResponse{
		Notifications: *notifications,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadCount")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	count, err := h.repository.CountUnreadNotifications(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread notifications: %v", err))
		h.writeError(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	response := api.UnreadCountResponse{
		Count: count,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkNotificationRead")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	notificationID := chi.URLParam(r, "notification_id")
	if _, err := uuid.Parse(notificationID); err != nil {
		h.writeError(w, "notification id is not valid", http.StatusBadRequest)
		return
	}

	modified, err := h.repository.MarkNotificationRead(r.Context(), notificationID, actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark notification read: %v", err))
		h.writeError(w, "failed to mark notification read", http.StatusInternalServerError)
		return
	}

	unread, err := h.repository.CountUnreadNotifications(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread notifications: %v", err))
		h.writeError(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	h.notifier.PushUnreadCount(r.Context(), actor.UUID, unread)

	response := api.MarkReadResponse{
		Modified: modified,
		Unread:   unread,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkAllNotificationsRead")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	modified, err := h.repository.MarkAllNotificationsRead(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark all notifications read: %v", err))
		h.writeError(w, "failed to mark all notifications read", http.StatusInternalServerError)
		return
	}

	h.notifier.PushUnreadCount(r.Context(), actor.UUID, 0)

	response := api.MarkAllReadResponse{
		Modified: modified,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteNotification")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	notificationID := chi.URLParam(r, "notification_id")
	if _, err := uuid.Parse(notificationID); err != nil {
		h.writeError(w, "notification id is not valid", http.StatusBadRequest)
		return
	}

	deleted, err := h.repository.DeleteNotification(r.Context(), notificationID, actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete notification: %v", err))
		h.writeError(w, "failed to delete notification", http.StatusInternalServerError)
		return
	}

	unread, err := h.repository.CountUnreadNotifications(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread notifications: %v", err))
		h.writeError(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	h.notifier.PushUnreadCount(r.Context(), actor.UUID, unread)

	response := api.DeleteNotificationResponse{
		Deleted: deleted,
		Unread:  unread,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) BulkDeleteNotifications(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("BulkDeleteNotifications")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req api.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateBulkDelete(&req); err != nil {
		logger.Error(fmt.Sprintf("bulk delete validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("bulk delete validation failed: %v", err), http.StatusBadRequest)
		return
	}

	deleted, err := h.repository.DeleteNotifications(r.Context(), req.Ids, actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete notifications: %v", err))
		h.writeError(w, "failed to delete notifications", http.StatusInternalServerError)
		return
	}

	unread, err := h.repository.CountUnreadNotifications(r.Context(), actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread notifications: %v", err))
		h.writeError(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	h.notifier.PushUnreadCount(r.Context(), actor.UUID, unread)

	response := api.BulkDeleteResponse{
		Deleted: deleted,
		Unread:  unread,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	actor, ok := userFromContext(r.Context())
	if !ok {
		logger.Error("failed to get caller identity")
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(actor.UUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, "failed to generate connect token", http.StatusInternalServerError)
		return
	}

	response := api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetFaqs(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFaqs")

	faqs, err := h.repository.GetFaqs(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get faqs: %v", err))
		h.writeError(w, "failed to get faqs", http.StatusInternalServerError)
		return
	}

	response := api.GetFaqsResponse{
		Faqs: *faqs,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func userFromContext(ctx context.Context) (model.UserInfo, bool) {
	userUUID, ok := ctx.Value(config.KeyUUID).(string)
	if !ok || userUUID == "" {
		return model.UserInfo{}, false
	}

	username, _ := ctx.Value(config.KeyUsername).(string)
	role, _ := ctx.Value(config.KeyRole).(string)

	return model.UserInfo{
		UUID:     userUUID,
		Username: username,
		Role:     role,
	}, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
