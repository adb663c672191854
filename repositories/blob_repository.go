package repositories

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type Blob struct {
	FileName   string
	ReadCloser io.ReadCloser
}

type BlobRepository interface {
	GetBlob(ctx context.Context, bucketUrl, fileName string) (Blob, error)
	OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error)
	DeleteFile(ctx context.Context, bucketUrl, fileName string) error
}

type blobRepository struct {
	mu      sync.Mutex
	buckets map[string]*blob.Bucket
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.buckets[bucketUrl] == nil {
		bucket, err := blob.OpenBucket(ctx, bucketUrl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
		}
		repository.buckets[bucketUrl] = bucket
	}
	return repository.buckets[bucketUrl], nil
}

func (repository *blobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (Blob, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return Blob{}, err
	}

	reader, err := bucket.NewReader(ctx, fileName, nil)
	if err != nil {
		return Blob{}, errors.Wrapf(err, "failed to read blob %s", fileName)
	}
	return Blob{FileName: fileName, ReadCloser: reader}, nil
}

func (repository *blobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}

	writer, err := bucket.NewWriter(ctx, fileName, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open write stream for blob %s", fileName)
	}
	return writer, nil
}

func (repository *blobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return err
	}
	return errors.Wrapf(bucket.Delete(ctx, fileName), "failed to delete blob %s", fileName)
}
