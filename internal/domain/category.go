package domain

import "time"

// ReservedCategorySlug is the synthetic "all posts" category used by list views.
// It is never stored and must never be the target of a create or update.
const ReservedCategorySlug = "all"

// Category represents a blog category document.
// Count is virtual: computed from the posts collection on read, never stored.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
