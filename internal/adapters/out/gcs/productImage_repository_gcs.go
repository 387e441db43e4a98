// internal/adapters/out/gcs/productImage_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
)

// ProductImageRepositoryGCS uploads product images to object storage and
// returns their public URLs.
//
// Layout (single bucket):
// - bucket: <configured>
// - objectPath: products/{productId}_{rand}_{fileName}
//
// Public access: the bucket is expected to grant allUsers Storage Object
// Viewer (uniform access), so objects are readable without per-object ACLs.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

// Upload writes data under objectName and returns the public URL.
func (r *ProductImageRepositoryGCS) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("productImage_repository_gcs: storage client is nil")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("productImage_repository_gcs: bucket is empty")
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectName), "/")
	if obj == "" {
		return "", errors.New("productImage_repository_gcs: objectName is empty")
	}
	if len(data) == 0 {
		return "", errors.New("productImage_repository_gcs: data is empty")
	}

	w := r.Client.Bucket(bucket).Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	} else {
		w.ContentType = "application/octet-stream"
	}
	w.CacheControl = "public, max-age=86400"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("productImage_repository_gcs: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("productImage_repository_gcs: close: %w", err)
	}

	return r.publicURL(bucket, obj), nil
}

func (r *ProductImageRepositoryGCS) publicURL(bucket, obj string) string {
	base := strings.TrimRight(strings.TrimSpace(r.PublicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Escape each path segment; slashes stay literal.
	segs := strings.Split(obj, "/")
	for i := range segs {
		segs[i] = url.PathEscape(segs[i])
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, strings.Join(segs, "/"))
}
