package storage

import (
	"context"
	"io"
)

// Bucket names for uploaded site media. Each resource service writes into
// exactly one bucket.
const (
	BucketPartnerLogos    = "partner-logos"
	BucketPortfolioImages = "portfolio-images"
	BucketHeroImages      = "hero-images"
)

// ObjectStorage is the contract the resource services use for uploaded
// files. Save returns the stable public URL of the stored object; Delete
// takes the object name previously derived from such a URL via ObjectName.
type ObjectStorage interface {
	Save(ctx context.Context, bucket, name string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, bucket, name string) error

	// ObjectName derives the stored object's name from its public URL by
	// stripping the bucket prefix. The second return is false when the URL
	// does not point into the given bucket.
	ObjectName(bucket, publicURL string) (string, bool)
}
