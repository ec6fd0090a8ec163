package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rpupo63/corporate-site-backend/config"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rs/zerolog/log"
)

const (
	MaxImageSize = 5 << 20

	StorageS3     = "s3"
	StorageInline = "inline"

	imageKeyPrefix = "blog-images/"
)

var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ObjectPutter is the part of the S3 client image uploads need
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// StoredImage describes where an uploaded image ended up
type StoredImage struct {
	URL     string `json:"url"`
	Storage string `json:"storage"`
}

// ImageStorage puts uploaded images in S3 when a bucket is configured. Without
// one, or when a put fails, images are returned inline as data URLs.
type ImageStorage struct {
	client        ObjectPutter
	bucket        string
	publicBaseURL string
	newKey        func(ext string) string
}

// NewImageStorage reads S3_BUCKET, S3_REGION and S3_PUBLIC_BASE_URL. Credentials
// come from the default AWS chain.
func NewImageStorage(ctx context.Context, cfg map[string]string) (*ImageStorage, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return NewInlineImageStorage(), nil
	}

	region := config.GetString(cfg, "S3_REGION", "us-east-1")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	publicBaseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return NewS3ImageStorage(s3.NewFromConfig(awsCfg), bucket, publicBaseURL), nil
}

func NewInlineImageStorage() *ImageStorage {
	return &ImageStorage{newKey: newImageKey}
}

func NewS3ImageStorage(client ObjectPutter, bucket, publicBaseURL string) *ImageStorage {
	return &ImageStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		newKey:        newImageKey,
	}
}

// Backend names where new uploads go
func (s *ImageStorage) Backend() string {
	if s.client == nil {
		return StorageInline
	}
	return StorageS3
}

// ValidateImage checks the declared content type and size of an upload
func ValidateImage(contentType string, size int64) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !slices.Contains(AllowedImageTypes, mediaType) {
		return errs.NewUnsupportedMediaTypeError(contentType, AllowedImageTypes)
	}
	if size > MaxImageSize {
		return errs.NewMaxBodySizeExceededError(MaxImageSize)
	}
	if size == 0 {
		return errs.NewInvalidFieldError("file", "file is empty")
	}
	return nil
}

// Store saves data and returns the URL clients should reference
func (s *ImageStorage) Store(ctx context.Context, filename, contentType string, data []byte) (StoredImage, error) {
	if err := ValidateImage(contentType, int64(len(data))); err != nil {
		return StoredImage{}, err
	}
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if s.client != nil {
		key := s.newKey(imageExtension(filename, mediaType))
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(mediaType),
		})
		if err == nil {
			log.Info().Str("bucket", s.bucket).Str("key", key).Int("size", len(data)).Msg("Stored uploaded image in S3")
			return StoredImage{URL: s.publicBaseURL + "/" + key, Storage: StorageS3}, nil
		}
		log.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Msg("S3 upload failed, returning inline image")
	}

	return StoredImage{
		URL:     "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Storage: StorageInline,
	}, nil
}

func newImageKey(ext string) string {
	return imageKeyPrefix + uuid.NewString() + ext
}

func imageExtension(filename, mediaType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
