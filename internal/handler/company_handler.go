package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/domain"
	"mkn-console/internal/service"
)

// CompanyHandler handles CRM company HTTP requests.
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents the body for company create and update. The form
// submits the whole record, so updates replace stored fields.
type CompanyRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email"`
	Address         string                 `json:"address"`
	Website         string                 `json:"website"`
	Status          string                 `json:"status"`
	Priority        string                 `json:"priority"`
	Notes           string                 `json:"notes"`
	Tags            []string               `json:"tags"`
	Services        []string               `json:"services"`
	ProjectDetails  domain.ProjectDetails  `json:"project_details"`
	ContractDetails domain.ContractDetails `json:"contract_details"`
	SocialMedia     domain.SocialMedia     `json:"social_media"`
}

func (r CompanyRequest) toDomain(id string) *domain.Company {
	return &domain.Company{
		ID:              id,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Address:         r.Address,
		Website:         r.Website,
		Status:          domain.CompanyStatus(r.Status),
		Priority:        domain.CompanyPriority(r.Priority),
		Notes:           r.Notes,
		Tags:            r.Tags,
		Services:        r.Services,
		ProjectDetails:  r.ProjectDetails,
		ContractDetails: r.ContractDetails,
		SocialMedia:     r.SocialMedia,
	}
}

// ListCompanies handles GET /api/v1/companies?status=&priority=&q=
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	filter := domain.CompanyFilter{
		Status:   domain.CompanyStatus(c.Query("status")),
		Priority: domain.CompanyPriority(c.Query("priority")),
	}
	if filter.Status != "" && !domain.IsValidCompanyStatus(string(filter.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + string(filter.Status)})
		return
	}
	if filter.Priority != "" && !domain.IsValidCompanyPriority(string(filter.Priority)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority: " + string(filter.Priority)})
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), filter, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// GetCompany handles GET /api/v1/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// CreateCompany handles POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req.toDomain(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// UpdateCompany handles PUT /api/v1/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), req.toDomain(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CompanyStats handles GET /api/v1/companies/stats
func (h *CompanyHandler) CompanyStats(c *gin.Context) {
	stats, err := h.companyService.CompanyStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
