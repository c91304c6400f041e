package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/musasahinkundakci/firebase-backend-recipe/config"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
)

// objectPathMarker separates the bucket endpoint from the object path in
// stored image URLs; the query string carries access tokens and is not part
// of the path.
const objectPathMarker = "/o/"

// S3ObjectStore implements ObjectStore on the configured S3 bucket.
type S3ObjectStore struct {
	client *s3.Client
	bucket string
}

func NewS3ObjectStore(cfg *config.S3Config) *S3ObjectStore {
	return &S3ObjectStore{client: cfg.Client, bucket: cfg.BucketName}
}

func (s *S3ObjectStore) DeleteObject(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	return err
}

// ImageCleanupService deletes the stored image of a removed recipe. By the
// time it runs the record deletion is already committed, so a failed object
// delete leaves an orphan rather than rolling anything back; the bus logs
// the error and nothing retries.
type ImageCleanupService struct {
	store ObjectStore
}

func NewImageCleanupService(store ObjectStore) *ImageCleanupService {
	return &ImageCleanupService{store: store}
}

func (s *ImageCleanupService) Register(bus events.Bus) {
	bus.Subscribe(events.RecipeDeleted, s.HandleDeleted)
}

func (s *ImageCleanupService) HandleDeleted(ctx context.Context, evt events.Event) error {
	var payload events.RecipeDeletedPayload
	if err := events.Decode(evt, &payload); err != nil {
		return err
	}
	if payload.Recipe.ImageURL == "" {
		return nil
	}

	path, err := ObjectPathFromURL(payload.Recipe.ImageURL)
	if err != nil {
		return fmt.Errorf("recipe %s: %w", payload.RecipeID, err)
	}

	logger.Log.Infof("deleting image object %s for recipe %s", path, payload.RecipeID)
	if err := s.store.DeleteObject(ctx, path); err != nil {
		return fmt.Errorf("failed to delete image object %s: %w", path, err)
	}
	return nil
}

// ObjectPathFromURL recovers the storage object path encoded in an image
// URL: the percent-decoded substring between the "/o/" marker and the query
// string boundary.
func ObjectPathFromURL(imageURL string) (string, error) {
	decoded, err := url.QueryUnescape(imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to decode image url: %w", err)
	}

	start := strings.Index(decoded, objectPathMarker)
	if start < 0 {
		return "", fmt.Errorf("image url has no %q marker: %s", objectPathMarker, decoded)
	}
	start += len(objectPathMarker)

	end := strings.Index(decoded, "?")
	if end < start {
		return "", fmt.Errorf("image url has no query boundary after the object path: %s", decoded)
	}
	return decoded[start:end], nil
}
