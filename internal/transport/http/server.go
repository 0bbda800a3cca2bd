package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"digibayt/internal/domain/models"
	appmw "digibayt/internal/middleware"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"
	"digibayt/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

type BlogService interface {
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	GetPost(ctx context.Context, identifier string, includeDrafts bool) (*dto.BlogPostResponse, error)
	ListPosts(ctx context.Context, query dto.ListPostsQuery, includeDrafts bool) (*dto.BlogPostListResponse, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type AuthorService interface {
	CreateAuthor(ctx context.Context, req dto.AuthorRequest) (*models.Author, error)
	UpdateAuthor(ctx context.Context, authorID uuid.UUID, req dto.AuthorRequest) (*models.Author, error)
	DeleteAuthor(ctx context.Context, authorID uuid.UUID) error
	GetAuthor(ctx context.Context, identifier string) (*models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
}

type TaxonomyService interface {
	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	GetCategory(ctx context.Context, identifier string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateTag(ctx context.Context, req dto.TagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, tagID uuid.UUID, req dto.TagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
	GetTag(ctx context.Context, identifier string) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type PortfolioService interface {
	CreateItem(ctx context.Context, req dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	GetItem(ctx context.Context, identifier string, includeDrafts bool) (*dto.PortfolioItemResponse, error)
	ListItems(ctx context.Context, query dto.ListPortfolioQuery, includeDrafts bool) (*dto.PortfolioListResponse, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	CreateCategory(ctx context.Context, req dto.PortfolioCategoryRequest) (*models.PortfolioCategory, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.PortfolioCategoryRequest) (*models.PortfolioCategory, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	ListCategories(ctx context.Context) ([]models.PortfolioCategory, error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, req dto.CreateContactRequest) (*models.ContactSubmission, error)
	UpdateSubmission(ctx context.Context, subID uuid.UUID, req dto.UpdateContactRequest) (*models.ContactSubmission, error)
	DeleteSubmission(ctx context.Context, subID uuid.UUID) error
	GetSubmission(ctx context.Context, subID uuid.UUID) (*models.ContactSubmission, error)
	ListSubmissions(ctx context.Context, query dto.ListContactsQuery) ([]models.ContactSubmission, int, error)
}

type CommentService interface {
	SubmitComment(ctx context.Context, req dto.CreateCommentRequest) (*models.Comment, error)
	ApproveComment(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	ListComments(ctx context.Context, query dto.ListCommentsQuery, isAdmin bool) ([]models.Comment, error)
}

type CatalogService interface {
	CreateServiceCategory(ctx context.Context, req dto.ServiceCategoryRequest) (*models.ServiceCategory, error)
	UpdateServiceCategory(ctx context.Context, scID uuid.UUID, req dto.ServiceCategoryRequest) (*models.ServiceCategory, error)
	DeleteServiceCategory(ctx context.Context, scID uuid.UUID) error
	GetServiceCategory(ctx context.Context, identifier string) (*models.ServiceCategory, error)
	ListServiceCategories(ctx context.Context, includeInactive bool) ([]models.ServiceCategory, error)
}

type UserService interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Setup(ctx context.Context, req dto.SetupRequest) (*models.TokenPair, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type TokenService interface {
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RevokeToken(ctx context.Context, userID, refreshToken string) error
}

type MediaService interface {
	ListMedia(ctx context.Context, bucket, prefix, search string) ([]models.MediaObject, error)
	Upload(ctx context.Context, file *multipart.FileHeader, bucket, prefix string) (*models.MediaObject, error)
	Delete(ctx context.Context, bucket, key string) error
	CreateFolder(ctx context.Context, bucket, folder string) error
	Buckets() []string
}

type Routers struct {
	log       *slog.Logger
	Blog      BlogService
	Authors   AuthorService
	Taxonomy  TaxonomyService
	Portfolio PortfolioService
	Contacts  ContactService
	Comments  CommentService
	Catalog   CatalogService
	Users     UserService
	Tokens    TokenService
	Media     MediaService
}

func NewRouter(
	log *slog.Logger,
	blog BlogService,
	authors AuthorService,
	taxonomy TaxonomyService,
	portfolio PortfolioService,
	contacts ContactService,
	comments CommentService,
	catalog CatalogService,
	users UserService,
	tokens TokenService,
	media MediaService,
) *Routers {
	return &Routers{
		log:       log,
		Blog:      blog,
		Authors:   authors,
		Taxonomy:  taxonomy,
		Portfolio: portfolio,
		Contacts:  contacts,
		Comments:  comments,
		Catalog:   catalog,
		Users:     users,
		Tokens:    tokens,
		Media:     media,
	}
}

// adminSession reports whether the guard (strict or optional) attached a
// panel-capable identity to the request.
func adminSession(c echo.Context) bool {
	meta := appmw.Identity(c)
	return meta != nil && meta.Role.Valid()
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// storeSessionToken mirrors the issued access token into the cookie
// session so browser navigation is authenticated without a bearer header.
func storeSessionToken(c echo.Context, accessToken string) {
	sess, err := session.Get("session", c)
	if err != nil {
		return
	}
	sess.Values["access_token"] = accessToken
	_ = sess.Save(c.Request(), c.Response())
}

func clearSessionToken(c echo.Context) {
	sess, err := session.Get("session", c)
	if err != nil {
		return
	}
	delete(sess.Values, "access_token")
	sess.Options.MaxAge = -1
	_ = sess.Save(c.Request(), c.Response())
}

// respondError maps domain sentinels onto HTTP statuses. Anything
// unmapped is logged and returned as an opaque 500.
func (r *Routers) respondError(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, storage.ErrBucketNotFound):
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("bucket_not_found", "Unknown storage bucket"))
	case errors.Is(err, storage.ErrSlugTaken):
		return c.JSON(http.StatusConflict, response.ErrSlugTaken)
	case errors.Is(err, storage.ErrProtectedCategory):
		return c.JSON(http.StatusConflict, response.ErrProtectedCategory)
	case errors.Is(err, storage.ErrLastSuperadmin):
		return c.JSON(http.StatusConflict, response.ErrLastSuperadmin)
	case errors.Is(err, storage.ErrUserExists):
		return c.JSON(http.StatusConflict, response.ErrUserAlreadyExists)
	case errors.Is(err, storage.ErrCommentNotApproved):
		return c.JSON(http.StatusConflict, response.ErrorResponseWithDetails("parent_not_approved", "Cannot reply to an unapproved comment"))
	case errors.Is(err, storage.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", "Uploaded file exceeds the size limit"))
	}

	log.Error("request failed", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}
