package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	ParentID  uuid.UUID `json:"parent_id,omitempty"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Published time.Time `json:"published"`
}

// Verdict is the moderation decision for one comment.
type Verdict struct {
	CommentID uuid.UUID `json:"comment_id"`
	Allowed   bool      `json:"allowed"`
	// Matched lists the patterns found in the comment.
	Matched []string `json:"matched,omitempty"`
	// Censored is the comment text with matches masked, set for rejected comments.
	Censored  string    `json:"censored,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
