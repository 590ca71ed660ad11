package domain

import "time"

// PlatformID identifies one social-media destination.
type PlatformID string

const (
	PlatformTwitter   PlatformID = "twitter"
	PlatformInstagram PlatformID = "instagram"
	PlatformFacebook  PlatformID = "facebook"
	PlatformLinkedIn  PlatformID = "linkedin"
	PlatformTikTok    PlatformID = "tiktok"
)

// Variant is one platform-specific rendition of a social post.
type Variant struct {
	Content   string   `json:"content"`
	Hashtags  []string `json:"hashtags,omitempty"`
	Mentions  []string `json:"mentions,omitempty"`
	MediaURLs []string `json:"media_urls,omitempty"`
}

// SocialPost represents a multi-platform social post document. Variants is
// keyed by platform; its key set must always equal Platforms (see SyncVariants).
type SocialPost struct {
	ID             string                 `json:"id"`
	Topic          string                 `json:"topic"`
	Tone           string                 `json:"tone,omitempty"`
	TargetAudience string                 `json:"target_audience,omitempty"`
	BrandContext   string                 `json:"brand_context,omitempty"`
	Instructions   string                 `json:"instructions,omitempty"`
	Status         PostStatus             `json:"status"`
	ScheduledFor   *time.Time             `json:"scheduled_for,omitempty"`
	Platforms      []PlatformID           `json:"platforms"`
	Variants       map[PlatformID]Variant `json:"variants"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// SyncVariants reconciles the variant map with the selected platform set:
// newly selected platforms get a default-initialized entry, deselected
// platforms lose theirs. No stale entries survive.
func (p *SocialPost) SyncVariants() {
	if p.Variants == nil {
		p.Variants = make(map[PlatformID]Variant, len(p.Platforms))
	}
	selected := make(map[PlatformID]bool, len(p.Platforms))
	for _, id := range p.Platforms {
		selected[id] = true
		if _, ok := p.Variants[id]; !ok {
			p.Variants[id] = Variant{}
		}
	}
	for id := range p.Variants {
		if !selected[id] {
			delete(p.Variants, id)
		}
	}
}
