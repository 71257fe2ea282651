package s3

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/source"
)

// S3Source lists objects in a single S3 bucket. Object keys act as
// slash-separated paths; common prefixes of a non-recursive listing
// become directory entries. Ownership and link counts are synthesized.
type S3Source struct {
	mu sync.RWMutex

	client *minio.Client
	bucket string
}

// NewS3 creates a listing source over the given bucket.
func NewS3(endpoint, bucket, accessKey, secretKey string, useSSL bool) (*S3Source, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	return &S3Source{
		client: client,
		bucket: bucket,
	}, nil
}

// Name returns the identifier name defined for this source
func (*S3Source) Name() string {
	return "s3"
}

// Open verifies the bucket exists.
func (ss *S3Source) Open(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	exists, err := ss.client.BucketExists(ctx, ss.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return data.ErrNotExist
	}

	return nil
}

// Close is part of the lifecycle behaviour and gets called when the
// source is no longer needed.
func (ss *S3Source) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns the long-format fields this source can
// populate with real values.
func (ss *S3Source) GetCapabilities() *source.Capabilities {
	return &source.Capabilities{
		Capabilities: []source.Capability{
			source.CapabilityModTime,
		},
	}
}

// Stat returns metadata for the object at path.
func (ss *S3Source) Stat(ctx context.Context, target string) (*data.Entry, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	key := cleanKey(target)
	if key == "" {
		return data.NewDirEntry("/", 0755), nil
	}

	info, err := ss.client.StatObject(ctx, ss.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return ss.objectEntry(key, info.Size, info.LastModified), nil
	}

	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return nil, err
	}

	// Missing object: the key may still exist as a prefix
	listing := ss.client.ListObjects(ctx, ss.bucket, minio.ListObjectsOptions{
		Prefix:  key + "/",
		MaxKeys: 1,
	})
	for object := range listing {
		if object.Err != nil {
			return nil, object.Err
		}
		return data.NewDirEntry(path.Base(key), 0755), nil
	}

	return nil, data.ErrNotExist
}

// List returns all entries under the prefix at path. Listing an
// object returns that entry as a singleton.
func (ss *S3Source) List(ctx context.Context, target string) ([]*data.Entry, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	key := cleanKey(target)
	if key != "" {
		info, err := ss.client.StatObject(ctx, ss.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return []*data.Entry{ss.objectEntry(key, info.Size, info.LastModified)}, nil
		}
	}

	prefix := key
	if prefix != "" {
		prefix += "/"
	}

	listing := ss.client.ListObjects(ctx, ss.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	})

	entries := make([]*data.Entry, 0)
	for object := range listing {
		if object.Err != nil {
			return nil, object.Err
		}

		rest := strings.TrimPrefix(object.Key, prefix)
		if rest == "" {
			continue
		}
		if strings.HasSuffix(rest, "/") {
			// Common prefix reported by the non-recursive listing
			entries = append(entries, data.NewDirEntry(strings.TrimSuffix(rest, "/"), 0755))
			continue
		}
		entries = append(entries, ss.objectEntry(object.Key, object.Size, object.LastModified))
	}

	if len(entries) == 0 && key != "" {
		return nil, data.ErrNotExist
	}

	return entries, nil
}

func (ss *S3Source) objectEntry(key string, size int64, modTime time.Time) *data.Entry {
	entry := data.NewFileEntry(path.Base(key), size, 0644)
	entry.Path = key
	entry.Owner = "s3"
	entry.Group = "s3"
	if !modTime.IsZero() {
		entry.ModTime = modTime
	}
	return entry
}

func cleanKey(target string) string {
	key := path.Clean("/" + target)
	return strings.TrimPrefix(key, "/")
}
