package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	ImageRef string    `json:"image_url"`
	// Creator.Name is joined from the users table on read; only ID is
	// stored on the post row.
	Creator   Creator   `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Creator is the public slice of a post's owner. Never carries the
// password hash or other private fields.
type Creator struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
