package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
)

func TestComputeBudget(t *testing.T) {
	twitter, ok := ByID(domain.PlatformTwitter)
	require.True(t, ok)
	require.Equal(t, 280, twitter.CharLimit)

	// 250 chars of content + two hashtags totalling 20 chars with the
	// joining space: "#production" (11) + " " (1) + "#quality" (8) = 20.
	v := domain.Variant{
		Content:  strings.Repeat("a", 250),
		Hashtags: []string{"#production", "#quality"},
	}
	b := ComputeBudget(twitter, v)
	assert.Equal(t, 270, b.Current)
	assert.False(t, b.IsOverLimit)
	assert.InDelta(t, 270.0/280.0, b.Percentage, 1e-9)

	// Raising the combined hashtag length to 31 flips the flag without
	// touching content.
	v.Hashtags = []string{"#production", "#quality-management"} // 11+1+19 = 31
	b = ComputeBudget(twitter, v)
	assert.Equal(t, 281, b.Current)
	assert.True(t, b.IsOverLimit)
	assert.Len(t, v.Content, 250)
}

func TestComputeBudgetEmpty(t *testing.T) {
	linkedin, ok := ByID(domain.PlatformLinkedIn)
	require.True(t, ok)

	b := ComputeBudget(linkedin, domain.Variant{})
	assert.Equal(t, 0, b.Current)
	assert.False(t, b.IsOverLimit)
	assert.Zero(t, b.Percentage)
}

func TestIsValidPlatform(t *testing.T) {
	assert.True(t, IsValidPlatform(domain.PlatformTwitter))
	assert.True(t, IsValidPlatform(domain.PlatformTikTok))
	assert.False(t, IsValidPlatform("myspace"))
}
