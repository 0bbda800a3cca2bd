package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"
	"time"

	"digibayt/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBucketStorage struct {
	mock.Mock
}

func (m *MockBucketStorage) Save(ctx context.Context, file *multipart.FileHeader, bucket, prefix string) (*models.MediaObject, error) {
	args := m.Called(ctx, file, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaObject), args.Error(1)
}

func (m *MockBucketStorage) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *MockBucketStorage) ListObjects(ctx context.Context, bucket, prefix, search string) ([]models.MediaObject, error) {
	args := m.Called(ctx, bucket, prefix, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaObject), args.Error(1)
}

func (m *MockBucketStorage) EnsureFolder(ctx context.Context, bucket, folder string) error {
	args := m.Called(ctx, bucket, folder)
	return args.Error(0)
}

func (m *MockBucketStorage) PublicURL(bucket, key string) string {
	args := m.Called(bucket, key)
	return args.String(0)
}

func (m *MockBucketStorage) Buckets() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func newTestService(store *MockBucketStorage) *MediaService {
	return NewMediaService(slog.Default(), store, time.Minute)
}

func TestListMedia_SecondCallServedFromCache(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	objects := []models.MediaObject{
		{Bucket: "blog", Key: "covers/hero.png", Name: "hero.png", Size: 1024},
	}
	store.On("ListObjects", mock.Anything, "blog", "covers", "").Return(objects, nil).Once()

	first, err := svc.ListMedia(context.Background(), "blog", "covers", "")
	require.NoError(t, err)

	second, err := svc.ListMedia(context.Background(), "blog", "covers", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	store.AssertNumberOfCalls(t, "ListObjects", 1)
}

func TestListMedia_DistinctQueriesCachedSeparately(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	store.On("ListObjects", mock.Anything, "blog", "", "").
		Return([]models.MediaObject{{Key: "a.png"}}, nil).Once()
	store.On("ListObjects", mock.Anything, "blog", "", "hero").
		Return([]models.MediaObject{{Key: "hero.png"}}, nil).Once()

	plain, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)
	filtered, err := svc.ListMedia(context.Background(), "blog", "", "hero")
	require.NoError(t, err)

	assert.Len(t, plain, 1)
	assert.Len(t, filtered, 1)
	assert.NotEqual(t, plain[0].Key, filtered[0].Key)
	store.AssertExpectations(t)
}

func TestListMedia_ErrorNotCached(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	listErr := errors.New("disk gone")
	store.On("ListObjects", mock.Anything, "blog", "", "").Return(nil, listErr).Once()
	store.On("ListObjects", mock.Anything, "blog", "", "").
		Return([]models.MediaObject{{Key: "a.png"}}, nil).Once()

	_, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.ErrorIs(t, err, listErr)

	objects, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)
	assert.Len(t, objects, 1)
}

func TestUpload_FlushesListingCache(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	store.On("ListObjects", mock.Anything, "blog", "", "").
		Return([]models.MediaObject{}, nil).Twice()
	store.On("Save", mock.Anything, mock.Anything, "blog", "").
		Return(&models.MediaObject{Bucket: "blog", Key: "new.png", Size: 10}, nil).Once()

	_, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	obj, err := svc.Upload(context.Background(), &multipart.FileHeader{Filename: "new.png"}, "blog", "")
	require.NoError(t, err)
	assert.Equal(t, "new.png", obj.Key)

	_, err = svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListObjects", 2)
}

func TestDelete_FlushesListingCache(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	store.On("ListObjects", mock.Anything, "blog", "", "").
		Return([]models.MediaObject{}, nil).Twice()
	store.On("Delete", mock.Anything, "blog", "old.png").Return(nil).Once()

	_, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "blog", "old.png"))

	_, err = svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListObjects", 2)
}

func TestCreateFolder_FlushesListingCache(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	store.On("ListObjects", mock.Anything, "blog", "", "").
		Return([]models.MediaObject{}, nil).Twice()
	store.On("EnsureFolder", mock.Anything, "blog", "drafts").Return(nil).Once()

	_, err := svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.CreateFolder(context.Background(), "blog", "drafts"))

	_, err = svc.ListMedia(context.Background(), "blog", "", "")
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListObjects", 2)
}

func TestBuckets_Passthrough(t *testing.T) {
	store := new(MockBucketStorage)
	svc := newTestService(store)

	store.On("Buckets").Return([]string{"blog", "portfolio", "general"}).Once()

	assert.Equal(t, []string{"blog", "portfolio", "general"}, svc.Buckets())
}
