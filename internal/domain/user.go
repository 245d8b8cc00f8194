package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	// PostIDs is a denormalized index of the posts this user owns.
	// The post rows are the source of truth; the service keeps this
	// list in step after every post mutation.
	PostIDs   []uuid.UUID `json:"posts"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OwnsPost reports whether id is in the user's owned-post index.
func (u *User) OwnsPost(id uuid.UUID) bool {
	for _, pid := range u.PostIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// AddPost appends id to the owned-post index, skipping duplicates.
func (u *User) AddPost(id uuid.UUID) {
	if u.OwnsPost(id) {
		return
	}
	u.PostIDs = append(u.PostIDs, id)
}

// RemovePost drops id from the owned-post index.
func (u *User) RemovePost(id uuid.UUID) {
	for i, pid := range u.PostIDs {
		if pid == id {
			u.PostIDs = append(u.PostIDs[:i], u.PostIDs[i+1:]...)
			return
		}
	}
}
