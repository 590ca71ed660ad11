package validator

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
)

func validPost() *domain.Post {
	return &domain.Post{
		Slug:         "fason-uretim-cozumleri",
		Title:        "Fason Üretim Çözümleri",
		Content:      "body",
		CategorySlug: "uretim",
		Status:       domain.PostStatusDraft,
		AuthorName:   "editor",
	}
}

func TestValidatePost(t *testing.T) {
	v := NewValidator()

	t.Run("valid draft", func(t *testing.T) {
		assert.NoError(t, v.ValidatePost(validPost()))
	})

	t.Run("missing title", func(t *testing.T) {
		p := validPost()
		p.Title = ""
		err := v.ValidatePost(p)
		require.Error(t, err)
		ve, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, ve, "title")
	})

	t.Run("bad slug format", func(t *testing.T) {
		p := validPost()
		p.Slug = "Not A Slug"
		assert.Error(t, v.ValidatePost(p))
	})

	t.Run("reserved category rejected", func(t *testing.T) {
		p := validPost()
		p.CategorySlug = domain.ReservedCategorySlug
		assert.Error(t, v.ValidatePost(p))
	})

	t.Run("invalid status", func(t *testing.T) {
		p := validPost()
		p.Status = "archived"
		assert.Error(t, v.ValidatePost(p))
	})

	t.Run("scheduled without timestamp", func(t *testing.T) {
		p := validPost()
		p.Status = domain.PostStatusScheduled
		assert.Error(t, v.ValidatePost(p))
	})

	t.Run("scheduled in the past", func(t *testing.T) {
		p := validPost()
		p.Status = domain.PostStatusScheduled
		past := time.Now().Add(-time.Hour)
		p.ScheduledFor = &past
		assert.Error(t, v.ValidatePost(p))
	})

	t.Run("scheduled in the future", func(t *testing.T) {
		p := validPost()
		p.Status = domain.PostStatusScheduled
		future := time.Now().Add(time.Hour)
		p.ScheduledFor = &future
		assert.NoError(t, v.ValidatePost(p))
	})

	t.Run("published needs no timestamp", func(t *testing.T) {
		p := validPost()
		p.Status = domain.PostStatusPublished
		assert.NoError(t, v.ValidatePost(p))
	})
}

func TestValidateCategory(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		c := &domain.Category{Name: "Ambalaj Üretimi", Slug: "ambalaj-uretimi"}
		assert.NoError(t, v.ValidateCategory(c))
	})

	t.Run("reserved slug rejected", func(t *testing.T) {
		c := &domain.Category{Name: "All", Slug: domain.ReservedCategorySlug}
		assert.Error(t, v.ValidateCategory(c))
	})

	t.Run("missing name", func(t *testing.T) {
		c := &domain.Category{Slug: "x"}
		assert.Error(t, v.ValidateCategory(c))
	})
}

func TestValidateCompany(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		c := &domain.Company{
			Name:     "Ambalaj Sanayi",
			Email:    "info@example.com",
			Status:   domain.CompanyStatusLead,
			Priority: domain.CompanyPriorityHigh,
		}
		assert.NoError(t, v.ValidateCompany(c))
	})

	t.Run("empty email allowed", func(t *testing.T) {
		c := &domain.Company{
			Name:     "Ambalaj Sanayi",
			Status:   domain.CompanyStatusLead,
			Priority: domain.CompanyPriorityLow,
		}
		assert.NoError(t, v.ValidateCompany(c))
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		c := &domain.Company{
			Name:     "Ambalaj Sanayi",
			Email:    "not-an-email",
			Status:   domain.CompanyStatusLead,
			Priority: domain.CompanyPriorityLow,
		}
		assert.Error(t, v.ValidateCompany(c))
	})

	t.Run("invalid priority", func(t *testing.T) {
		c := &domain.Company{
			Name:     "Ambalaj Sanayi",
			Status:   domain.CompanyStatusLead,
			Priority: "urgent",
		}
		assert.Error(t, v.ValidateCompany(c))
	})
}

func TestValidateSocialPost(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		p := &domain.SocialPost{
			Topic:     "Sustainable packaging",
			Status:    domain.PostStatusDraft,
			Platforms: []domain.PlatformID{domain.PlatformTwitter, domain.PlatformLinkedIn},
		}
		assert.NoError(t, v.ValidateSocialPost(p))
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		p := &domain.SocialPost{
			Topic:     "Sustainable packaging",
			Status:    domain.PostStatusDraft,
			Platforms: []domain.PlatformID{"myspace"},
		}
		assert.Error(t, v.ValidateSocialPost(p))
	})

	t.Run("no platforms rejected", func(t *testing.T) {
		p := &domain.SocialPost{
			Topic:  "Sustainable packaging",
			Status: domain.PostStatusDraft,
		}
		assert.Error(t, v.ValidateSocialPost(p))
	})
}
