package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	body, _ := io.ReadAll(params.Body)
	f.bodies = append(f.bodies, string(body))
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("image/png", 10))
	assert.NoError(t, ValidateImage("image/jpeg; charset=binary", MaxImageSize))

	assert.True(t, errs.IsUnsupportedMediaTypeError(ValidateImage("application/pdf", 10)))
	assert.True(t, errs.IsUnsupportedMediaTypeError(ValidateImage("", 10)))
	assert.True(t, errs.IsMaxBodySizeExceededError(ValidateImage("image/png", MaxImageSize+1)))
	assert.True(t, errs.IsInvalidFieldError(ValidateImage("image/png", 0)))
}

func TestInlineImageStorage(t *testing.T) {
	storage := NewInlineImageStorage()
	assert.Equal(t, StorageInline, storage.Backend())

	stored, err := storage.Store(context.Background(), "logo.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, StorageInline, stored.Storage)
	assert.Equal(t, "data:image/png;base64,cG5nLWJ5dGVz", stored.URL)
}

func TestS3ImageStorage(t *testing.T) {
	putter := &fakePutter{}
	storage := NewS3ImageStorage(putter, "site-assets", "https://cdn.example.com/")
	storage.newKey = func(ext string) string { return imageKeyPrefix + "fixed" + ext }
	assert.Equal(t, StorageS3, storage.Backend())

	stored, err := storage.Store(context.Background(), "Photo.JPG", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, StorageS3, stored.Storage)
	assert.Equal(t, "https://cdn.example.com/blog-images/fixed.jpg", stored.URL)

	require.Len(t, putter.inputs, 1)
	assert.Equal(t, "site-assets", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "blog-images/fixed.jpg", aws.ToString(putter.inputs[0].Key))
	assert.Equal(t, "image/jpeg", aws.ToString(putter.inputs[0].ContentType))
	assert.Equal(t, "jpeg-bytes", putter.bodies[0])
}

func TestS3ImageStorageFallsBackToInline(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	storage := NewS3ImageStorage(putter, "site-assets", "https://cdn.example.com")

	stored, err := storage.Store(context.Background(), "a.gif", "image/gif", []byte("gif"))
	require.NoError(t, err)
	assert.Equal(t, StorageInline, stored.Storage)
	assert.True(t, strings.HasPrefix(stored.URL, "data:image/gif;base64,"))
}

func TestImageKeysAreUnique(t *testing.T) {
	a := newImageKey(".png")
	b := newImageKey(".png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "blog-images/"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.Equal(t, ".webp", imageExtension("upload", "image/webp"))
}

func TestNewImageStorageWithoutBucketIsInline(t *testing.T) {
	storage, err := NewImageStorage(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, StorageInline, storage.Backend())
}
