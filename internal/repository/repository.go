package repository

import (
	redisapp "digibayt/internal/storage/redis"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository bundles every data-access object built over the shared pool.
type Repository struct {
	Blog           *BlogRepo
	Authors        *AuthorRepo
	Taxonomy       *TaxonomyRepo
	Portfolio      *PortfolioRepo
	Contacts       *ContactRepo
	ServiceCatalog *ServiceCatalogRepo
	Comments       *CommentRepo
	Users          *UserRepo
	Tokens         *RedisTokenRepo
}

func NewRepository(db *pgxpool.Pool, redisClient *redisapp.Client) *Repository {
	return &Repository{
		Blog:           NewBlogRepository(db),
		Authors:        NewAuthorRepository(db),
		Taxonomy:       NewTaxonomyRepository(db),
		Portfolio:      NewPortfolioRepository(db),
		Contacts:       NewContactRepository(db),
		ServiceCatalog: NewServiceCatalogRepository(db),
		Comments:       NewCommentRepository(db),
		Users:          NewUserRepository(db),
		Tokens:         NewRedisTokenRepo(redisClient),
	}
}
