// Package s3 implements blobstore.Store backed by Amazon S3.
//
// Spectrum containers in public repositories increasingly live in object
// storage; ranged GETs map directly onto the indexed access pattern, so
// a record fetch downloads only the bytes of that record.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/time/rate"

	"github.com/mzkit-go/mzkit/blobstore"
)

// Options configures the S3 store.
type Options struct {
	// Prefix is prepended to all object keys (e.g. "runs/2024/").
	Prefix string

	// ReadLimitBytesPerSec throttles ranged GET traffic client-side.
	// Zero means unlimited.
	ReadLimitBytesPerSec int
}

// Store implements blobstore.Store for an S3 bucket.
type Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	limiter *rate.Limiter
}

// NewStore creates an S3 blob store over an existing client.
func NewStore(client *s3.Client, bucket string, optFns ...func(o *Options)) *Store {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var limiter *rate.Limiter
	if opts.ReadLimitBytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.ReadLimitBytesPerSec), opts.ReadLimitBytesPerSec)
	}

	return &Store{
		client:  client,
		bucket:  bucket,
		prefix:  opts.Prefix,
		limiter: limiter,
	}
}

// NewStoreFromDefaultConfig creates an S3 store using the ambient AWS
// configuration (environment, shared config, instance role).
func NewStoreFromDefaultConfig(ctx context.Context, bucket string, optFns ...func(o *Options)) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3: loading aws config: %w", err)
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, optFns...), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open verifies the object exists and returns a ranged-read handle.
func (s *Store) Open(name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		var nsk *types.NoSuchKey
		if errors.As(err, &nf) || errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &s3Blob{
		client:  s.client,
		bucket:  s.bucket,
		key:     key,
		size:    aws.ToInt64(head.ContentLength),
		limiter: s.limiter,
	}, nil
}

type s3Blob struct {
	client  *s3.Client
	bucket  string
	key     string
	size    int64
	limiter *rate.Limiter
}

func (b *s3Blob) Close() error { return nil }

func (b *s3Blob) Size() int64 { return b.size }

// ReadAt issues a ranged GET for exactly the requested window.
func (b *s3Blob) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("s3: negative offset %d", off)
	}
	if off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	if b.limiter != nil {
		if err := b.limiter.WaitN(context.Background(), int(end-off+1)); err != nil {
			return 0, err
		}
	}

	resp, err := b.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.ReadFull(resp.Body, p)
	if err == io.ErrUnexpectedEOF || (err == nil && int64(n) < int64(len(p))) {
		if off+int64(n) >= b.size {
			return n, io.EOF
		}
	}
	return n, err
}
