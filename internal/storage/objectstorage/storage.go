package objectstorage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"digibayt/internal/domain/models"
	"digibayt/internal/storage"
)

// AllBuckets selects every configured bucket in a listing call.
const AllBuckets = "all"

// folderMarker simulates directory entries: a zero-byte object whose key
// ends with this suffix.
const folderMarker = ".keep"

// BucketStorage exposes bucket-addressed object storage. Objects are
// addressed by slash-delimited keys; public URLs are the only access
// mechanism, there are no signed links.
type BucketStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, bucket, prefix string) (*models.MediaObject, error)
	Delete(ctx context.Context, bucket, key string) error
	ListObjects(ctx context.Context, bucket, prefix, search string) ([]models.MediaObject, error)
	EnsureFolder(ctx context.Context, bucket, folder string) error
	PublicURL(bucket, key string) string
	Buckets() []string
}

// LocalBucketStorage keeps each bucket as a top-level directory under baseDir.
type LocalBucketStorage struct {
	baseDir string
	baseURL string
	maxSize int64
	buckets []string
}

func NewLocalBucketStorage(baseDir, baseURL string, maxSize int64, buckets []string) (*LocalBucketStorage, error) {
	for _, b := range buckets {
		if err := os.MkdirAll(filepath.Join(baseDir, b), 0755); err != nil {
			return nil, fmt.Errorf("failed to create bucket dir: %w", err)
		}
	}

	return &LocalBucketStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
		buckets: buckets,
	}, nil
}

func (s *LocalBucketStorage) Buckets() []string {
	return s.buckets
}

func (s *LocalBucketStorage) hasBucket(bucket string) bool {
	for _, b := range s.buckets {
		if b == bucket {
			return true
		}
	}
	return false
}

func (s *LocalBucketStorage) Save(ctx context.Context, file *multipart.FileHeader, bucket, prefix string) (*models.MediaObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.hasBucket(bucket) {
		return nil, storage.ErrBucketNotFound
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return nil, storage.ErrFileTooLarge
	}

	key := path.Join(cleanKey(prefix), file.Filename)
	fullPath := filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return &models.MediaObject{
		Bucket:     bucket,
		Key:        key,
		Name:       file.Filename,
		URL:        s.PublicURL(bucket, key),
		Size:       size,
		MimeType:   mimeTypeFor(file.Filename),
		ModifiedAt: info.ModTime(),
	}, nil
}

func (s *LocalBucketStorage) Delete(ctx context.Context, bucket, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.hasBucket(bucket) {
		return storage.ErrBucketNotFound
	}

	fullPath := filepath.Join(s.baseDir, bucket, filepath.FromSlash(cleanKey(key)))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrObjectNotFound
		}
		return err
	}

	return nil
}

// ListObjects walks one bucket (or every bucket when bucket == AllBuckets)
// under prefix and optionally filters by a case-insensitive substring match
// on the object name.
func (s *LocalBucketStorage) ListObjects(ctx context.Context, bucket, prefix, search string) ([]models.MediaObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buckets := s.buckets
	if bucket != AllBuckets {
		if !s.hasBucket(bucket) {
			return nil, storage.ErrBucketNotFound
		}
		buckets = []string{bucket}
	}

	search = strings.ToLower(search)
	objects := make([]models.MediaObject, 0)

	for _, b := range buckets {
		root := filepath.Join(s.baseDir, b, filepath.FromSlash(cleanKey(prefix)))

		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipAll
				}
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(filepath.Join(s.baseDir, b), p)
			if err != nil {
				return err
			}
			key := filepath.ToSlash(rel)

			obj, err := s.statObject(b, key)
			if err != nil {
				return err
			}
			if search != "" && !strings.Contains(strings.ToLower(obj.Name), search) {
				return nil
			}

			objects = append(objects, *obj)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", b, err)
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		if objects[i].Bucket != objects[j].Bucket {
			return objects[i].Bucket < objects[j].Bucket
		}
		return objects[i].Key < objects[j].Key
	})

	return objects, nil
}

// EnsureFolder writes the zero-byte marker object that stands in for a
// directory entry.
func (s *LocalBucketStorage) EnsureFolder(ctx context.Context, bucket, folder string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.hasBucket(bucket) {
		return storage.ErrBucketNotFound
	}

	markerPath := filepath.Join(s.baseDir, bucket, filepath.FromSlash(cleanKey(folder)), folderMarker)
	if err := os.MkdirAll(filepath.Dir(markerPath), 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	f, err := os.OpenFile(markerPath, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to write folder marker: %w", err)
	}
	return f.Close()
}

func (s *LocalBucketStorage) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + cleanKey(key)
}

func (s *LocalBucketStorage) statObject(bucket, key string) (*models.MediaObject, error) {
	fullPath := filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}

	name := path.Base(key)
	isFolder := name == folderMarker && info.Size() == 0
	if isFolder {
		name = path.Base(path.Dir(key))
	}

	return &models.MediaObject{
		Bucket:     bucket,
		Key:        key,
		Name:       name,
		URL:        s.PublicURL(bucket, key),
		Size:       info.Size(),
		MimeType:   mimeTypeFor(key),
		IsFolder:   isFolder,
		ModifiedAt: info.ModTime(),
	}, nil
}

func cleanKey(key string) string {
	key = path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	return strings.TrimPrefix(key, "/")
}

func mimeTypeFor(name string) string {
	return mime.TypeByExtension(path.Ext(name))
}
