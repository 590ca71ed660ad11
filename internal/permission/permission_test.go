package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCan_ResolutionTiers(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		key     string
		want    bool
	}{
		{
			name:    "fine-grained key true",
			session: &Session{Role: RoleViewer, Grants: map[string]bool{"blog.write": true}},
			key:     KeyBlogWrite,
			want:    true,
		},
		{
			name: "fine-grained key false beats legacy alias true",
			session: &Session{Role: RoleViewer, Grants: map[string]bool{
				"blog.write":   false,
				"canManageBlog": true,
			}},
			key:  KeyBlogWrite,
			want: false,
		},
		{
			name:    "legacy alias grants when fine key absent",
			session: &Session{Role: RoleViewer, Grants: map[string]bool{"canManageBlog": true}},
			key:     KeyBlogWrite,
			want:    true,
		},
		{
			name:    "legacy alias false beats role list",
			session: &Session{Role: RoleEditor, Grants: map[string]bool{"canManageBlog": false}},
			key:     KeyBlogWrite,
			want:    false,
		},
		{
			name:    "role-derived grant",
			session: &Session{Role: RoleEditor, Grants: map[string]bool{}},
			key:     KeySocialWrite,
			want:    true,
		},
		{
			name:    "role without key denied",
			session: &Session{Role: RoleViewer, Grants: map[string]bool{}},
			key:     KeyBlogDelete,
			want:    false,
		},
		{
			name:    "super-role grants everything",
			session: &Session{Role: RoleSuperAdmin, Grants: map[string]bool{}},
			key:     KeyUsersWrite,
			want:    true,
		},
		{
			name:    "nil session denied",
			session: nil,
			key:     KeyBlogRead,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.session, tt.key))
		})
	}
}

func TestCan_Monotonicity(t *testing.T) {
	// A key present and true always grants; a key present and false without
	// a super-role never grants, regardless of role or other grants.
	for _, role := range []Role{RoleAdmin, RoleEditor, RoleViewer} {
		granted := &Session{Role: role, Grants: map[string]bool{KeyOutlookDelete: true}}
		assert.True(t, Can(granted, KeyOutlookDelete), "role %s", role)

		denied := &Session{Role: role, Grants: map[string]bool{KeyOutlookDelete: false}}
		assert.False(t, Can(denied, KeyOutlookDelete), "role %s", role)
	}
}

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver()
	r.Set("tok-1", &Session{UserID: "u1", Role: RoleEditor})

	s, err := r.Resolve(context.Background(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "u1", s.UserID)

	s, err = r.Resolve(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, s)
}
