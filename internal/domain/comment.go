package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentLen is the upper bound for trimmed comment content.
const MaxCommentLen = 5000

// Comment is a note attached to an activity. AuthorName and AuthorEmail are
// captured when the comment is written and never re-derived.
type Comment struct {
	ID          uuid.UUID
	ActivityID  uuid.UUID
	UserID      uuid.UUID
	Content     string
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
