package domain

import "time"

// PostStatus represents the lifecycle state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

// ValidPostStatuses contains all valid post statuses.
var ValidPostStatuses = []PostStatus{PostStatusDraft, PostStatusScheduled, PostStatusPublished}

// IsValidPostStatus checks if a status is valid.
func IsValidPostStatus(status string) bool {
	for _, s := range ValidPostStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Post represents a blog post document.
type Post struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	CategorySlug  string     `json:"category_slug"`
	Tags          []string   `json:"tags,omitempty"`
	Status        PostStatus `json:"status"`
	Featured      bool       `json:"featured"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	AuthorName    string     `json:"author_name"`
	ScheduledFor  *time.Time `json:"scheduled_for,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PostFilter narrows a post listing. Zero values mean "no constraint".
type PostFilter struct {
	CategorySlug string
	Status       PostStatus
	FeaturedOnly bool
}

// PostStats summarizes the posts collection for the dashboard.
type PostStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Scheduled int `json:"scheduled"`
	Drafts    int `json:"drafts"`
	Featured  int `json:"featured"`
}
