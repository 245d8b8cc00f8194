package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/feedline/internal/domain"
)

// TopicPosts carries every post change event.
const TopicPosts = "posts"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is the envelope broadcast to connected clients. Create and
// update carry the full post (creator resolved to id and name only);
// delete carries just the post ID.
type Event struct {
	Action    string       `json:"action"`
	Post      *domain.Post `json:"post,omitempty"`
	PostID    *uuid.UUID   `json:"post_id,omitempty"`
	Timestamp int64        `json:"ts"`
}

func NewPostEvent(action string, post *domain.Post) *Event {
	return &Event{
		Action:    action,
		Post:      post,
		Timestamp: time.Now().Unix(),
	}
}

func NewDeleteEvent(postID uuid.UUID) *Event {
	return &Event{
		Action:    ActionDelete,
		PostID:    &postID,
		Timestamp: time.Now().Unix(),
	}
}
