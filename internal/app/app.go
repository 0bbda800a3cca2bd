package app

import (
	"context"
	"log/slog"

	httpapp "digibayt/internal/app/http"
	"digibayt/internal/config"
	"digibayt/internal/repository"
	authorservice "digibayt/internal/services/author_service"
	blogservice "digibayt/internal/services/blog_service"
	catalogservice "digibayt/internal/services/catalog_service"
	commentservice "digibayt/internal/services/comment_service"
	contactservice "digibayt/internal/services/contact_service"
	mediaservice "digibayt/internal/services/media_service"
	portfolioservice "digibayt/internal/services/portfolio_service"
	taxonomyservice "digibayt/internal/services/taxonomy_service"
	tokenservice "digibayt/internal/services/token_service"
	userservice "digibayt/internal/services/user_service"
	"digibayt/internal/storage/objectstorage"
	"digibayt/internal/storage/postgresql"
	redisapp "digibayt/internal/storage/redis"
	httprouters "digibayt/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
)

type App struct {
	HTTPServer *httpapp.Server

	pool  *pgxpool.Pool
	redis *redisapp.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	pool, err := postgresql.Connect(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	bucketStorage, err := objectstorage.NewLocalBucketStorage(
		cfg.ObjectStorage.BaseDir,
		cfg.ObjectStorage.BaseURL,
		cfg.ObjectStorage.MaxSize,
		cfg.ObjectStorage.Buckets,
	)
	if err != nil {
		panic(err)
	}

	repo := repository.NewRepository(pool, redisClient)

	tokenSvc := tokenservice.NewTokenService(log, repo.Tokens, cfg.Session.Secret, cfg.TokenTTL, cfg.RefreshTTL)
	taxonomySvc := taxonomyservice.NewTaxonomyService(log, repo.Taxonomy)

	routers := httprouters.NewRouter(
		log,
		blogservice.NewBlogService(log, repo.Blog, repo.Authors, taxonomySvc),
		authorservice.NewAuthorService(log, repo.Authors),
		taxonomySvc,
		portfolioservice.NewPortfolioService(log, repo.Portfolio),
		contactservice.NewContactService(log, repo.Contacts),
		commentservice.NewCommentService(log, repo.Comments),
		catalogservice.NewCatalogService(log, repo.ServiceCatalog),
		userservice.NewUserService(log, repo.Users, tokenSvc),
		tokenSvc,
		mediaservice.NewMediaService(log, bucketStorage, cfg.ObjectStorage.ListTTL),
	)

	server := httpapp.New(log, cfg.Session.Secret, cfg.Session.Secret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		pool:       pool,
		redis:      redisClient,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		panic(err)
	}

	a.pool.Close()
	_ = a.redis.Close()
}
