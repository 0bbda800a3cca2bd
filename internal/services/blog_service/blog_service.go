package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/lib/markdown"
	"digibayt/internal/lib/slug"
	"digibayt/internal/repository"
	"digibayt/internal/storage"
	"digibayt/internal/transport/http/dto"

	"github.com/google/uuid"
)

const relatedPostsLimit = 3

// CategoryEnsurer lazily materializes the protected default category for
// posts saved without one.
type CategoryEnsurer interface {
	EnsureUncategorized(ctx context.Context) (*models.Category, error)
}

type BlogService struct {
	log      *slog.Logger
	repo     repository.BlogRepository
	authors  repository.AuthorRepository
	taxonomy CategoryEnsurer
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository, authors repository.AuthorRepository, taxonomy CategoryEnsurer) *BlogService {
	return &BlogService{
		log:      log,
		repo:     repo,
		authors:  authors,
		taxonomy: taxonomy,
	}
}

func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("author_id", req.AuthorID.String()),
	)

	log.Info("creating new blog post", slog.String("title", req.Title))

	if req.Title == "" {
		return nil, fmt.Errorf("%s: post title is required", op)
	}
	if req.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("%s: author ID is required", op)
	}

	post := models.BlogPost{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		AuthorID:      req.AuthorID,
		Categories:    req.Categories,
		Tags:          req.Tags,
		Status:        models.PostStatus(req.Status),
		SEO:           req.SEO,
	}

	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
		log.Debug("generated slug", slog.String("slug", post.Slug))
	}

	taken, err := s.repo.SlugExists(ctx, post.Slug, uuid.Nil)
	if err != nil {
		log.Error("failed to check slug", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		log.Warn("slug conflict", slog.String("slug", post.Slug))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
	}

	if post.Status == "" {
		post.Status = models.StatusDraft
	}

	if len(post.Categories) == 0 {
		uncategorized, err := s.taxonomy.EnsureUncategorized(ctx)
		if err != nil {
			log.Error("failed to ensure default category", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		post.Categories = []string{uncategorized.Name}
	}

	post.ReadTime = markdown.EstimateReadTime(post.Content)

	if post.Status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
		log.Debug("set published_at", slog.Time("published_at", now))
	}

	id, err := s.repo.SavePost(ctx, post)
	if err != nil {
		log.Error("failed to create post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post created successfully", slog.String("post_id", id.String()))
	return s.toPostResponse(ctx, id.String(), false)
}

func (s *BlogService) UpdatePost(ctx context.Context, postID uuid.UUID, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	const op = "blog_service.UpdatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", postID.String()),
	)

	log.Info("updating blog post")

	existingPost, err := s.repo.GetPostByIdentifier(ctx, postID.String())
	if err != nil {
		log.Error("failed to get post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil && *req.Slug != existingPost.Slug {
		newSlug := *req.Slug
		if newSlug == "" {
			title := existingPost.Title
			if req.Title != nil {
				title = *req.Title
			}
			newSlug = slug.Make(title)
		}

		taken, err := s.repo.SlugExists(ctx, newSlug, postID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}

		updates["slug"] = newSlug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["read_time"] = markdown.EstimateReadTime(*req.Content)
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}
	if req.AuthorID != nil {
		updates["author_id"] = *req.AuthorID
	}
	if req.Categories != nil {
		categories := req.Categories
		if len(categories) == 0 {
			uncategorized, err := s.taxonomy.EnsureUncategorized(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			categories = []string{uncategorized.Name}
		}
		updates["categories"] = categories
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.SEO != nil {
		updates["seo"] = req.SEO
	}

	// published_at is set exactly once, on the first transition to
	// published
	if req.Status != nil {
		updates["status"] = *req.Status
		if models.PostStatus(*req.Status) == models.StatusPublished &&
			existingPost.Status != models.StatusPublished &&
			existingPost.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
			log.Debug("set published_at", slog.Time("published_at", now))
		}
	}

	if len(updates) == 0 {
		return s.toPostResponse(ctx, postID.String(), false)
	}

	if err := s.repo.UpdatePostFields(ctx, postID, updates); err != nil {
		log.Error("failed to update post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post updated successfully")
	return s.toPostResponse(ctx, postID.String(), false)
}

// GetPost resolves a post by slug or id. Unpublished posts are only
// visible to an authenticated admin session; anonymous callers get
// not-found, never an error leak.
func (s *BlogService) GetPost(ctx context.Context, identifier string, includeDrafts bool) (*dto.BlogPostResponse, error) {
	const op = "blog_service.GetPost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("identifier", identifier),
	)

	post, err := s.repo.GetPostByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get post", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !includeDrafts && !post.IsVisible(time.Now()) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	resp := s.mapToPostResponse(ctx, post)
	resp.TOC = markdown.GenerateTOC(post.Content)

	related, err := s.repo.GetRelatedPosts(ctx, post, relatedPostsLimit)
	if err != nil {
		// related content is best-effort, the post itself still renders
		log.Warn("failed to get related posts", sl.Err(err))
	} else {
		for _, rp := range related {
			resp.Related = append(resp.Related, *s.mapToPostResponse(ctx, &rp))
		}
	}

	return resp, nil
}

func (s *BlogService) ListPosts(ctx context.Context, query dto.ListPostsQuery, includeDrafts bool) (*dto.BlogPostListResponse, error) {
	const op = "blog_service.ListPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.String("status_filter", query.Status),
	)

	log.Info("listing blog posts")

	filter := repository.PostFilter{
		Category: query.Category,
		Tag:      query.Tag,
		Page:     query.Page,
		PerPage:  query.PerPage,
	}

	if includeDrafts && query.IncludeDrafts {
		// admins opt in to drafts; "all" means no status constraint
		if query.Status != "" && query.Status != "all" {
			filter.Status = models.PostStatus(query.Status)
		}
	} else {
		now := time.Now()
		filter.Status = models.StatusPublished
		filter.VisibleAt = &now
	}

	posts, total, err := s.repo.GetPosts(ctx, filter)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	response := &dto.BlogPostListResponse{
		Posts:      make([]dto.BlogPostResponse, 0, len(posts)),
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}

	for i := range posts {
		response.Posts = append(response.Posts, *s.mapToPostResponse(ctx, &posts[i]))
	}

	log.Info("posts listed successfully", slog.Int("count", len(posts)))
	return response, nil
}

func (s *BlogService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "blog_service.DeletePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", postID.String()),
	)

	log.Info("deleting blog post")

	if err := s.repo.DeletePost(ctx, postID); err != nil {
		log.Error("failed to delete post", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post deleted successfully")
	return nil
}

func (s *BlogService) toPostResponse(ctx context.Context, identifier string, withTOC bool) (*dto.BlogPostResponse, error) {
	post, err := s.repo.GetPostByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	resp := s.mapToPostResponse(ctx, post)
	if withTOC {
		resp.TOC = markdown.GenerateTOC(post.Content)
	}

	return resp, nil
}

func (s *BlogService) mapToPostResponse(ctx context.Context, post *models.BlogPost) *dto.BlogPostResponse {
	return &dto.BlogPostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		FeaturedImage: post.FeaturedImage,
		Author:        s.authorSummary(ctx, post.AuthorID),
		Categories:    post.Categories,
		Tags:          post.Tags,
		Status:        post.Status,
		PublishedAt:   post.PublishedAt,
		ReadTime:      post.ReadTime,
		SEO:           post.SEO,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

// authorSummary degrades to the placeholder on a broken reference instead
// of failing the whole read.
func (s *BlogService) authorSummary(ctx context.Context, authorID uuid.UUID) dto.AuthorSummary {
	author, err := s.authors.GetAuthorByID(ctx, authorID)
	if err != nil {
		s.log.Warn("author lookup failed", slog.String("author_id", authorID.String()), sl.Err(err))
		return dto.AuthorSummary{
			Name: models.UnknownAuthor.Name,
			Slug: models.UnknownAuthor.Slug,
		}
	}

	return dto.AuthorSummary{
		ID:     author.ID,
		Name:   author.Name,
		Slug:   author.Slug,
		Avatar: author.Avatar,
	}
}
