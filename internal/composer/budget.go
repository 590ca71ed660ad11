// Package composer holds the multi-platform content composition model:
// the fixed platform table and the character-budget arithmetic.
package composer

import (
	"strings"

	"mkn-console/internal/domain"
)

// Platform describes one social destination and its character limit.
type Platform struct {
	ID         domain.PlatformID `json:"id"`
	Name       string            `json:"name"`
	CharLimit  int               `json:"char_limit"`
	MaxHashtag int               `json:"max_hashtags"`
}

// Platforms is the fixed per-platform lookup table.
var Platforms = []Platform{
	{ID: domain.PlatformTwitter, Name: "Twitter / X", CharLimit: 280, MaxHashtag: 5},
	{ID: domain.PlatformInstagram, Name: "Instagram", CharLimit: 2200, MaxHashtag: 30},
	{ID: domain.PlatformFacebook, Name: "Facebook", CharLimit: 63206, MaxHashtag: 30},
	{ID: domain.PlatformLinkedIn, Name: "LinkedIn", CharLimit: 3000, MaxHashtag: 10},
	{ID: domain.PlatformTikTok, Name: "TikTok", CharLimit: 2200, MaxHashtag: 20},
}

// ByID returns the platform with the given id, or false when unknown.
func ByID(id domain.PlatformID) (Platform, bool) {
	for _, p := range Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// IsValidPlatform checks whether the id names a known platform.
func IsValidPlatform(id domain.PlatformID) bool {
	_, ok := ByID(id)
	return ok
}

// Budget is the character-budget snapshot for one platform variant.
type Budget struct {
	Current     int     `json:"current"`
	Limit       int     `json:"limit"`
	Percentage  float64 `json:"percentage"`
	IsOverLimit bool    `json:"is_over_limit"`
}

// ComputeBudget evaluates the variant against the platform's limit. Pure:
// current = len(content) + len(join(hashtags, " ")).
func ComputeBudget(p Platform, v domain.Variant) Budget {
	current := len(v.Content) + len(strings.Join(v.Hashtags, " "))
	return Budget{
		Current:     current,
		Limit:       p.CharLimit,
		Percentage:  float64(current) / float64(p.CharLimit),
		IsOverLimit: current > p.CharLimit,
	}
}
