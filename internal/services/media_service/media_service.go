package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"digibayt/internal/domain/models"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/storage/objectstorage"

	gocache "github.com/patrickmn/go-cache"
)

// MediaService fronts the bucket storage for the admin media browser.
// Listings are cached for a short TTL since the browser polls them on
// every navigation; mutations flush the cache.
type MediaService struct {
	log   *slog.Logger
	store objectstorage.BucketStorage
	cache *gocache.Cache
}

func NewMediaService(log *slog.Logger, store objectstorage.BucketStorage, listTTL time.Duration) *MediaService {
	return &MediaService{
		log:   log,
		store: store,
		cache: gocache.New(listTTL, 2*listTTL),
	}
}

func (s *MediaService) ListMedia(ctx context.Context, bucket, prefix, search string) ([]models.MediaObject, error) {
	const op = "media_service.ListMedia"
	log := s.log.With(slog.String("op", op), slog.String("bucket", bucket))

	cacheKey := bucket + "|" + prefix + "|" + search
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]models.MediaObject), nil
	}

	objects, err := s.store.ListObjects(ctx, bucket, prefix, search)
	if err != nil {
		log.Error("failed to list objects", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(cacheKey, objects)
	return objects, nil
}

func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, bucket, prefix string) (*models.MediaObject, error) {
	const op = "media_service.Upload"
	log := s.log.With(
		slog.String("op", op),
		slog.String("bucket", bucket),
		slog.String("filename", file.Filename),
	)

	log.Info("uploading media object")

	obj, err := s.store.Save(ctx, file, bucket, prefix)
	if err != nil {
		log.Error("failed to save object", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Flush()

	log.Info("media object uploaded", slog.String("key", obj.Key), slog.Int64("size", obj.Size))
	return obj, nil
}

func (s *MediaService) Delete(ctx context.Context, bucket, key string) error {
	const op = "media_service.Delete"
	log := s.log.With(
		slog.String("op", op),
		slog.String("bucket", bucket),
		slog.String("key", key),
	)

	if err := s.store.Delete(ctx, bucket, key); err != nil {
		log.Error("failed to delete object", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Flush()

	log.Info("media object deleted")
	return nil
}

func (s *MediaService) CreateFolder(ctx context.Context, bucket, folder string) error {
	const op = "media_service.CreateFolder"
	log := s.log.With(
		slog.String("op", op),
		slog.String("bucket", bucket),
		slog.String("folder", folder),
	)

	if err := s.store.EnsureFolder(ctx, bucket, folder); err != nil {
		log.Error("failed to create folder", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Flush()

	log.Info("folder created")
	return nil
}

func (s *MediaService) Buckets() []string {
	return s.store.Buckets()
}
