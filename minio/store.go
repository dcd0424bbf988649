package minio

import (
	"context"
	"io"
	"math"

	minioSDK "github.com/minio/minio-go/v7"
)

// Store adapts the shared MinIO client to the upload pipeline's content
// store. It satisfies services.ObjectStore.
type Store struct{}

func (Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, progress func(percent int)) error {
	if progress != nil {
		r = &progressReader{r: r, total: size, report: progress}
	}
	_, err := Client.PutObject(ctx, BucketName, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// progressReader reports fractional completion as whole percentages while
// the object body is consumed.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report func(percent int)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.sent += int64(n)
	if p.total > 0 {
		percent := int(math.Round(float64(p.sent) / float64(p.total) * 100))
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}
