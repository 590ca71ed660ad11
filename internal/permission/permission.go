// Package permission implements the console's authorization gate: dot-namespaced
// permission keys resolved against the caller's session through a fixed sequence
// of tiers, first match wins.
package permission

// Role is the coarse role attached to a session.
type Role string

const (
	// RoleSuperAdmin implicitly grants every key (the escape-hatch tier).
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleViewer     Role = "viewer"
)

// Well-known permission keys.
const (
	KeyBlogRead       = "blog.read"
	KeyBlogWrite      = "blog.write"
	KeyBlogDelete     = "blog.delete"
	KeyCompaniesRead  = "companies.read"
	KeyCompaniesWrite = "companies.write"
	KeyCompaniesDel   = "companies.delete"
	KeySocialRead     = "social.read"
	KeySocialWrite    = "social.write"
	KeySocialDelete   = "social.delete"
	KeyOutlookRead    = "outlook.read"
	KeyOutlookSend    = "outlook.send"
	KeyOutlookWrite   = "outlook.write"
	KeyOutlookDelete  = "outlook.delete"
	KeyMediaRead      = "media.read"
	KeyUsersWrite     = "users.write"
)

// legacyAliases maps fine-grained keys to the legacy coarse flags that some
// stored permission sets still carry. Checked after the fine-grained key.
var legacyAliases = map[string]string{
	KeyBlogWrite:      "canManageBlog",
	KeyBlogDelete:     "canDeleteBlog",
	KeyCompaniesWrite: "canManageCompanies",
	KeyUsersWrite:     "canManageUsers",
	KeyOutlookRead:    "canAccessOutlook",
	KeyOutlookSend:    "canSendEmail",
}

// rolePermissions are the keys each role grants when neither the fine-grained
// key nor a legacy alias is present in the session's permission set.
var rolePermissions = map[Role][]string{
	RoleAdmin: {
		KeyBlogRead, KeyBlogWrite, KeyBlogDelete,
		KeyCompaniesRead, KeyCompaniesWrite, KeyCompaniesDel,
		KeySocialRead, KeySocialWrite, KeySocialDelete,
		KeyOutlookRead, KeyOutlookSend, KeyOutlookWrite, KeyOutlookDelete,
		KeyMediaRead,
	},
	RoleEditor: {
		KeyBlogRead, KeyBlogWrite,
		KeySocialRead, KeySocialWrite,
		KeyCompaniesRead,
		KeyMediaRead,
	},
	RoleViewer: {
		KeyBlogRead, KeyCompaniesRead, KeySocialRead, KeyOutlookRead,
	},
}

// Can reports whether the session grants the given key. Resolution tiers, in
// order: fine-grained key in the permission set, legacy alias, role-derived
// list, super-role. The first tier that matches decides.
func Can(s *Session, key string) bool {
	if s == nil {
		return false
	}
	if granted, ok := s.Grants[key]; ok {
		return granted
	}
	if alias, ok := legacyAliases[key]; ok {
		if granted, ok := s.Grants[alias]; ok {
			return granted
		}
	}
	for _, k := range rolePermissions[s.Role] {
		if k == key {
			return true
		}
	}
	return s.Role == RoleSuperAdmin
}
