package validator

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"mkn-console/internal/composer"
	"mkn-console/internal/domain"
)

var (
	slugRegex       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validPostStatus = []interface{}{
		domain.PostStatusDraft, domain.PostStatusScheduled, domain.PostStatusPublished,
	}
	validCompanyStatus = []interface{}{
		domain.CompanyStatusLead, domain.CompanyStatusActive,
		domain.CompanyStatusInactive, domain.CompanyStatusArchived,
	}
	validPriority = []interface{}{
		domain.CompanyPriorityLow, domain.CompanyPriorityMedium, domain.CompanyPriorityHigh,
	}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a Post entity.
func (v *Validator) ValidatePost(p *domain.Post) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.CategorySlug,
			validation.Required.Error("category_required"),
			validation.NotIn(domain.ReservedCategorySlug).Error("category_reserved"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validPostStatus...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	// Scheduled posts need a future timestamp; published posts have no
	// timestamp constraint.
	if p.Status == domain.PostStatusScheduled {
		if p.ScheduledFor == nil {
			return validation.Errors{
				"scheduled_for": validation.NewError("scheduled_requires_timestamp", "scheduled posts must have scheduled_for"),
			}
		}
		if !p.ScheduledFor.After(time.Now()) {
			return validation.Errors{
				"scheduled_for": validation.NewError("scheduled_timestamp_past", "scheduled_for must be in the future"),
			}
		}
	}

	return nil
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
			validation.NotIn(domain.ReservedCategorySlug).Error("slug_reserved"),
		),
	)
}

// ValidateCompany validates a Company entity.
func (v *Validator) ValidateCompany(c *domain.Company) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Email,
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&c.Status,
			validation.Required.Error("status_required"),
			validation.In(validCompanyStatus...).Error("invalid_status"),
		),
		validation.Field(&c.Priority,
			validation.Required.Error("priority_required"),
			validation.In(validPriority...).Error("invalid_priority"),
		),
	)
}

// ValidateSocialPost validates a SocialPost entity, including that every
// selected platform is known.
func (v *Validator) ValidateSocialPost(p *domain.SocialPost) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Topic,
			validation.Required.Error("topic_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validPostStatus...).Error("invalid_status"),
		),
		validation.Field(&p.Platforms,
			validation.Required.Error("platforms_required"),
			validation.By(knownPlatformsRule),
		),
	)
	if err != nil {
		return err
	}

	if p.Status == domain.PostStatusScheduled && p.ScheduledFor == nil {
		return validation.Errors{
			"scheduled_for": validation.NewError("scheduled_requires_timestamp", "scheduled posts must have scheduled_for"),
		}
	}

	return nil
}

// knownPlatformsRule rejects platform ids absent from the fixed platform table.
func knownPlatformsRule(value interface{}) error {
	ids, ok := value.([]domain.PlatformID)
	if !ok {
		return nil
	}
	for _, id := range ids {
		if !composer.IsValidPlatform(id) {
			return validation.NewError("unknown_platform", "unknown platform: "+string(id))
		}
	}
	return nil
}
