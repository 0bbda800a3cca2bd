package objectstorage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"digibayt/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalBucketStorage {
	t.Helper()

	s, err := NewLocalBucketStorage(t.TempDir(), "http://localhost:8080/storage", 1024, []string{"blog", "portfolio"})
	require.NoError(t, err)
	return s
}

func writeObject(t *testing.T, s *LocalBucketStorage, bucket, key, content string) {
	t.Helper()

	p := filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func TestListObjects_SingleBucket(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	writeObject(t, s, "blog", "hero.png", "img")
	writeObject(t, s, "blog", "2025/chart.svg", "svg")
	writeObject(t, s, "portfolio", "other.png", "img")

	objects, err := s.ListObjects(ctx, "blog", "", "")
	require.NoError(t, err)
	require.Len(t, objects, 2)

	assert.Equal(t, "2025/chart.svg", objects[0].Key)
	assert.Equal(t, "hero.png", objects[1].Key)
	assert.Equal(t, "http://localhost:8080/storage/blog/hero.png", objects[1].URL)
	assert.False(t, objects[0].IsFolder)
}

func TestListObjects_AllBuckets(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	writeObject(t, s, "blog", "a.png", "x")
	writeObject(t, s, "portfolio", "b.png", "x")

	objects, err := s.ListObjects(ctx, AllBuckets, "", "")
	require.NoError(t, err)
	assert.Len(t, objects, 2)
	assert.Equal(t, "blog", objects[0].Bucket)
	assert.Equal(t, "portfolio", objects[1].Bucket)
}

func TestListObjects_Search(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	writeObject(t, s, "blog", "Hero-Banner.png", "x")
	writeObject(t, s, "blog", "footer.png", "x")

	objects, err := s.ListObjects(ctx, "blog", "", "hero")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "Hero-Banner.png", objects[0].Name)
}

func TestListObjects_UnknownBucket(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.ListObjects(context.Background(), "nope", "", "")
	assert.ErrorIs(t, err, storage.ErrBucketNotFound)
}

func TestEnsureFolder_MarkerListedAsFolder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureFolder(ctx, "blog", "2025/drafts"))

	objects, err := s.ListObjects(ctx, "blog", "2025", "")
	require.NoError(t, err)
	require.Len(t, objects, 1)

	assert.True(t, objects[0].IsFolder)
	assert.Equal(t, "drafts", objects[0].Name)
	assert.Equal(t, int64(0), objects[0].Size)
}

func TestDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	writeObject(t, s, "blog", "gone.png", "x")

	require.NoError(t, s.Delete(ctx, "blog", "gone.png"))
	assert.ErrorIs(t, s.Delete(ctx, "blog", "gone.png"), storage.ErrObjectNotFound)
}

func TestCleanKey(t *testing.T) {
	assert.Equal(t, "a/b.png", cleanKey("/a/b.png"))
	assert.Equal(t, "b.png", cleanKey("../../b.png"))
	assert.Equal(t, "a/b.png", cleanKey("a//b.png"))
	assert.Equal(t, "a/b.png", cleanKey("a\\b.png"))
}
