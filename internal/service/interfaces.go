package service

import (
	"context"

	"mkn-console/internal/client/ai"
	"mkn-console/internal/client/images"
	"mkn-console/internal/client/mail"
	"mkn-console/internal/composer"
	"mkn-console/internal/domain"
)

// ContentServiceInterface defines blog post and category operations.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	CreatePost(ctx context.Context, in PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, id string, in PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
	RelatedPosts(ctx context.Context, id string, limit int) ([]domain.Post, error)
	PostStats(ctx context.Context) (*domain.PostStats, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name, description string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CompanyServiceInterface defines CRM company operations.
type CompanyServiceInterface interface {
	ListCompanies(ctx context.Context, filter domain.CompanyFilter, query string) ([]domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	CompanyStats(ctx context.Context) (*domain.CompanyStats, error)
}

// ComposerServiceInterface defines multi-platform social post operations.
type ComposerServiceInterface interface {
	ListSocialPosts(ctx context.Context) ([]domain.SocialPost, error)
	GetSocialPost(ctx context.Context, id string) (*domain.SocialPost, error)
	CreateSocialPost(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error)
	UpdateSocialPost(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error)
	DeleteSocialPost(ctx context.Context, id string) error
	GeneratePlatform(ctx context.Context, id string, platform domain.PlatformID) (*domain.SocialPost, error)
	GenerateAll(ctx context.Context, id string) (*domain.SocialPost, error)
	Budgets(post *domain.SocialPost) map[domain.PlatformID]composer.Budget
}

// OverviewServiceInterface loads the dashboard's initial data.
type OverviewServiceInterface interface {
	Load(ctx context.Context) (*Overview, error)
}

// ContentGenerator is the slice of the AI client the composer consumes.
type ContentGenerator interface {
	GeneratePost(ctx context.Context, req ai.GenerationRequest, platform domain.PlatformID) (string, error)
	GenerateBatch(ctx context.Context, req ai.GenerationRequest, platforms []domain.PlatformID) (map[domain.PlatformID]string, error)
}

// MailGateway is the slice of the mail client the mailbox handlers consume.
type MailGateway interface {
	ListFolders(ctx context.Context, account string) ([]mail.Folder, error)
	ListMessages(ctx context.Context, account, folderID string) ([]mail.MessageSummary, error)
	GetMessage(ctx context.Context, account, messageID string) (*mail.Message, error)
	DownloadAttachment(ctx context.Context, account, messageID, attachmentID string) ([]byte, string, error)
	Send(ctx context.Context, account string, msg mail.OutgoingMessage) (string, error)
	Reply(ctx context.Context, account, messageID string, msg mail.OutgoingMessage) (string, error)
	Move(ctx context.Context, account, messageID, folderID string) error
	MarkRead(ctx context.Context, account, messageID string, read bool) error
	Delete(ctx context.Context, account, messageID string) error
}

// ImageSearcher is the slice of the image search client the media handler consumes.
type ImageSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]images.Image, error)
}
