package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/vilis-app/carsrent-api/internal/config"
	"github.com/vilis-app/carsrent-api/internal/httperr"
)

// Listing photos are downscaled and re-encoded to webp before upload;
// agencies send phone-camera originals that are far too large to serve.
const (
	maxImageWidth = 1600
	webpQuality   = 82
)

var ErrNotConfigured = errors.New("storage: S3_BUCKET not configured")

type ImageStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicBase := cfg.S3PublicBase
	if publicBase == "" && cfg.S3Endpoint != "" {
		publicBase = strings.TrimSuffix(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &ImageStore{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: publicBase,
	}
}

// UploadCarImage decodes a jpeg/png listing photo, downscales it,
// re-encodes it to webp and uploads it under a random key. Returns the
// public URL to store on the car.
func (s *ImageStore) UploadCarImage(ctx context.Context, r io.Reader) (string, error) {
	if s.bucket == "" {
		return "", ErrNotConfigured
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrValidation("invalid_image", "Unsupported or corrupt image file")
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := "cars/" + uuid.NewString() + ".webp"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}

	return s.publicBase + "/" + key, nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxImageWidth {
		return img
	}

	h := b.Dy() * maxImageWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
