package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// ContentRepository reads full script files from object storage.
type ContentRepository interface {
	// Get returns found=false when no object exists for the script.
	Get(ctx context.Context, scriptID int64) (content []byte, found bool, err error)
}

type contentRepoImpl struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewContentRepository(client *minio.Client, bucket, prefix string) ContentRepository {
	return &contentRepoImpl{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (r *contentRepoImpl) objectKey(scriptID int64) string {
	return fmt.Sprintf("%s%d.txt", r.prefix, scriptID)
}

func (r *contentRepoImpl) Get(ctx context.Context, scriptID int64) ([]byte, bool, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.objectKey(scriptID), minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read object: %w", err)
	}

	return content, true, nil
}
