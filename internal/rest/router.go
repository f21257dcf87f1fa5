package rest

import "github.com/go-chi/chi/v5"

// AttachRoutes mounts the forum REST surface onto the router.
func AttachRoutes(router chi.Router, h *Handler) {
	router.Route("/api/forum", func(r chi.Router) {
		r.Get("/threads", h.GetThreads)
		r.Post("/threads", h.CreateThread)
		r.Get("/threads/{thread_id}", h.GetThread)
		r.Post("/threads/{thread_id}/replies", h.CreateReply)
		r.Delete("/threads/{thread_id}/replies/{reply_id}", h.DeleteReplySubtree)

		r.Get("/notifications", h.GetNotifications)
		r.Get("/notifications/unread-count", h.GetUnreadCount)
		r.Post("/notifications/{notification_id}/read", h.MarkNotificationRead)
		r.Post("/notifications/read-all", h.MarkAllNotificationsRead)
		r.Delete("/notifications/{notification_id}", h.DeleteNotification)
		r.Post("/notifications/bulk-delete", h.BulkDeleteNotifications)

		r.Get("/realtime/token", h.GetConnectToken)
		r.Get("/faqs", h.GetFaqs)
	})
}
