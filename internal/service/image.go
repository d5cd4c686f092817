package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/alternatives"
	"github.com/pageza/labellens/backend/internal/models"
)

// ImageGenerator is the slice of the go-openai client used for product images.
type ImageGenerator interface {
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// S3PutObjectAPI uploads generated images.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService fills in missing catalog product images. Generation is a
// single best-effort attempt; any failure yields the placeholder image.
type ImageService struct {
	generator ImageGenerator
	uploader  S3PutObjectAPI
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// NewImageService accepts a nil generator, in which case every product gets
// the placeholder. publicURL is the bucket's public base, e.g.
// https://bucket.s3.amazonaws.com.
func NewImageService(generator ImageGenerator, uploader S3PutObjectAPI, bucket, publicURL string, logger *zap.Logger) *ImageService {
	if publicURL == "" && bucket != "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &ImageService{
		generator: generator,
		uploader:  uploader,
		bucket:    bucket,
		publicURL: publicURL,
		logger:    logger.Named("images"),
	}
}

// ImageFor returns the product's existing image, a freshly generated and
// uploaded one, or the placeholder.
func (s *ImageService) ImageFor(ctx context.Context, p *models.Product) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	placeholder := alternatives.PlaceholderImageURL(p.Name)
	if s.generator == nil || s.uploader == nil || s.bucket == "" {
		return placeholder
	}

	url, err := s.generate(ctx, p)
	if err != nil {
		s.logger.Warn("Product image generation failed, using placeholder",
			zap.String("product", p.Name),
			zap.Error(err))
		return placeholder
	}
	return url
}

func (s *ImageService) generate(ctx context.Context, p *models.Product) (string, error) {
	resp, err := s.generator.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE3,
		Prompt:         buildProductImagePrompt(p),
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("no image data in response")
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	key := fmt.Sprintf("product-images/%s.png", p.ID.String())
	_, err = s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

func buildProductImagePrompt(p *models.Product) string {
	name := p.Name
	if p.Brand != "" {
		name = p.Brand + " " + name
	}
	return fmt.Sprintf("Studio product photo of a packaged %s (%s), front of pack, plain white background, soft lighting, no text overlays.",
		name, p.SecondaryCategory)
}
