package model

import (
	"time"

	"github.com/google/uuid"
)

const AnonymousAuthor = "anonymous"

type ThreadPreviewList []ThreadPreview

type ThreadPreview struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Author     string    `db:"author" json:"author"`
	ReplyCount int64     `db:"reply_count" json:"reply_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Thread struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Author    string    `db:"author" json:"author"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReplyList []Reply

type Reply struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	ThreadID      uuid.UUID  `db:"thread_id" json:"thread_id"`
	Author        string     `db:"author" json:"author"`
	Content       string     `db:"content" json:"content"`
	ParentReplyID *uuid.UUID `db:"parent_reply_id" json:"parent_reply_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// ReplyRef is the minimal projection of a reply used for tree
// integrity checks and cascade deletion.
type ReplyRef struct {
	ID            uuid.UUID  `db:"id"`
	ParentReplyID *uuid.UUID `db:"parent_reply_id"`
	Author        string     `db:"author"`
}
