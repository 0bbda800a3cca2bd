package repository

import (
	"context"
	"time"

	"digibayt/internal/domain/models"

	"github.com/google/uuid"
)

// PostFilter is the validated listing configuration: every recognized
// filter is an explicit field, nothing is parsed dynamically.
type PostFilter struct {
	Status   models.PostStatus // empty means no status constraint
	Category string
	Tag      string
	Page     int
	PerPage  int
	// VisibleAt, when set, additionally requires published_at <= VisibleAt.
	VisibleAt *time.Time
}

type PortfolioFilter struct {
	Status   models.PostStatus
	Category string
	Tag      string
	Featured *bool
	Page     int
	PerPage  int
}

type BlogRepository interface {
	SavePost(ctx context.Context, post models.BlogPost) (uuid.UUID, error)
	UpdatePostFields(ctx context.Context, postID uuid.UUID, updates map[string]interface{}) error
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPostByIdentifier(ctx context.Context, identifier string) (*models.BlogPost, error)
	GetPosts(ctx context.Context, filter PostFilter) ([]models.BlogPost, int, error)
	GetRelatedPosts(ctx context.Context, post *models.BlogPost, limit int) ([]models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type AuthorRepository interface {
	SaveAuthor(ctx context.Context, author models.Author) (uuid.UUID, error)
	UpdateAuthor(ctx context.Context, author models.Author) error
	DeleteAuthor(ctx context.Context, authorID uuid.UUID) error
	GetAuthorByIdentifier(ctx context.Context, identifier string) (*models.Author, error)
	GetAuthorByID(ctx context.Context, authorID uuid.UUID) (*models.Author, error)
	GetAuthors(ctx context.Context) ([]models.Author, error)
}

type TaxonomyRepository interface {
	SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	GetCategoryByIdentifier(ctx context.Context, identifier string) (*models.Category, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	SaveTag(ctx context.Context, tag models.Tag) (uuid.UUID, error)
	UpdateTag(ctx context.Context, tag models.Tag) error
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
	GetTagByIdentifier(ctx context.Context, identifier string) (*models.Tag, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
}

type PortfolioRepository interface {
	SaveItem(ctx context.Context, item models.PortfolioItem) (uuid.UUID, error)
	UpdateItemFields(ctx context.Context, itemID uuid.UUID, updates map[string]interface{}) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GetItemByIdentifier(ctx context.Context, identifier string) (*models.PortfolioItem, error)
	GetItems(ctx context.Context, filter PortfolioFilter) ([]models.PortfolioItem, int, error)
	GetRelatedItems(ctx context.Context, item *models.PortfolioItem, limit int) ([]models.PortfolioItem, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	SaveCategory(ctx context.Context, category models.PortfolioCategory) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, category models.PortfolioCategory) error
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	GetCategories(ctx context.Context) ([]models.PortfolioCategory, error)
}

type ContactRepository interface {
	SaveSubmission(ctx context.Context, sub models.ContactSubmission) (uuid.UUID, error)
	UpdateSubmission(ctx context.Context, subID uuid.UUID, status models.ContactStatus, notes *string) error
	DeleteSubmission(ctx context.Context, subID uuid.UUID) error
	GetSubmissionByID(ctx context.Context, subID uuid.UUID) (*models.ContactSubmission, error)
	GetSubmissions(ctx context.Context, status models.ContactStatus, page, perPage int) ([]models.ContactSubmission, int, error)
}

type ServiceCatalogRepository interface {
	SaveServiceCategory(ctx context.Context, sc models.ServiceCategory) (uuid.UUID, error)
	UpdateServiceCategory(ctx context.Context, sc models.ServiceCategory) error
	DeleteServiceCategory(ctx context.Context, scID uuid.UUID) error
	GetServiceCategoryByIdentifier(ctx context.Context, identifier string) (*models.ServiceCategory, error)
	GetServiceCategories(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type CommentRepository interface {
	SaveComment(ctx context.Context, comment models.Comment) (uuid.UUID, error)
	SetApproved(ctx context.Context, commentID uuid.UUID, approved bool) error
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	GetCommentByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)
	GetComments(ctx context.Context, postID uuid.UUID, postType models.PostType, approvedOnly bool) ([]models.Comment, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}
