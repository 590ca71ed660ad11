package domain

import "time"

// CompanyStatus represents the CRM pipeline state of a company record.
type CompanyStatus string

const (
	CompanyStatusLead     CompanyStatus = "lead"
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
	CompanyStatusArchived CompanyStatus = "archived"
)

// CompanyPriority represents follow-up priority.
type CompanyPriority string

const (
	CompanyPriorityLow    CompanyPriority = "low"
	CompanyPriorityMedium CompanyPriority = "medium"
	CompanyPriorityHigh   CompanyPriority = "high"
)

// IsValidCompanyStatus checks if a status is valid.
func IsValidCompanyStatus(status string) bool {
	switch CompanyStatus(status) {
	case CompanyStatusLead, CompanyStatusActive, CompanyStatusInactive, CompanyStatusArchived:
		return true
	}
	return false
}

// IsValidCompanyPriority checks if a priority is valid.
func IsValidCompanyPriority(priority string) bool {
	switch CompanyPriority(priority) {
	case CompanyPriorityLow, CompanyPriorityMedium, CompanyPriorityHigh:
		return true
	}
	return false
}

// ProjectDetails is the project sub-document of a company record.
type ProjectDetails struct {
	Summary   string     `json:"summary,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
}

// ContractDetails is the contract sub-document of a company record.
type ContractDetails struct {
	Signed    bool       `json:"signed"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Value     *float64   `json:"value,omitempty"`
	Terms     string     `json:"terms,omitempty"`
}

// SocialMedia is the social links sub-document of a company record.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Company represents a CRM company/contact document.
type Company struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Address         string          `json:"address,omitempty"`
	Website         string          `json:"website,omitempty"`
	Status          CompanyStatus   `json:"status"`
	Priority        CompanyPriority `json:"priority"`
	Notes           string          `json:"notes,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Services        []string        `json:"services,omitempty"`
	ProjectDetails  ProjectDetails  `json:"project_details"`
	ContractDetails ContractDetails `json:"contract_details"`
	SocialMedia     SocialMedia     `json:"social_media"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CompanyFilter narrows a company listing.
type CompanyFilter struct {
	Status   CompanyStatus
	Priority CompanyPriority
}

// CompanyStats summarizes the companies collection for the dashboard.
type CompanyStats struct {
	Total    int `json:"total"`
	Leads    int `json:"leads"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Archived int `json:"archived"`
}

// MatchCompany is the client-side search predicate used by list views: a
// case-insensitive substring match on name and email. Pure and synchronous,
// applied over an already-loaded list.
func MatchCompany(c Company, query string) bool {
	if query == "" {
		return true
	}
	return containsFold(c.Name, query) || containsFold(c.Email, query)
}
