// Package s3 implements media object storage on S3-compatible backends.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	msgObjectStored  = "object stored"
	msgObjectDeleted = "object deleted"

	errCtxLoadingAWSConfig = "loading aws config"
	errCtxPuttingObject    = "putting object"
	errCtxDeletingObject   = "deleting object"
)

// Config holds the S3 connection settings plus the media proxy base URL
// used to address remote transformations.
type Config struct {
	Region         string
	Endpoint       string
	Bucket         string
	AccessKey      string
	SecretKey      string
	PublicBaseURL  string
	MediaProxyBase string
}

// MediaStorage implements services.MediaStorage on an S3-compatible store.
// Transformations are never computed here: Crop/Effect URLs point at a
// media proxy that renders on first fetch.
type MediaStorage struct {
	client         *s3.Client
	bucket         string
	publicBaseURL  string
	mediaProxyBase string
}

// NewMediaStorage connects to the configured bucket with static credentials.
func NewMediaStorage(ctx context.Context, cfg Config) (services.MediaStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingAWSConfig, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &MediaStorage{
		client:         client,
		bucket:         cfg.Bucket,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		mediaProxyBase: strings.TrimRight(cfg.MediaProxyBase, "/"),
	}, nil
}

// Upload stores the object and returns its public link.
func (m *MediaStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	log := logger.Log(ctx).With(zap.String("bucket", m.bucket), zap.String("key", key))

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxPuttingObject, err)
	}

	log.Debug(ctx, msgObjectStored, zap.Int("size", len(data)))
	return fmt.Sprintf("%s/%s/%s", m.publicBaseURL, m.bucket, key), nil
}

// Delete removes the stored object. S3 treats deleting a missing key as
// success, which matches the port contract.
func (m *MediaStorage) Delete(ctx context.Context, key string) error {
	log := logger.Log(ctx).With(zap.String("bucket", m.bucket), zap.String("key", key))

	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingObject, err)
	}

	log.Debug(ctx, msgObjectDeleted)
	return nil
}

// CropURL builds the link of a crop rendition on the media proxy.
func (m *MediaStorage) CropURL(link string, mode entities.CropMode, width, height int) (string, error) {
	if !mode.Valid() {
		return "", entities.ErrUnknownCrop
	}
	return fmt.Sprintf("%s/crop/%s/%dx%d?source=%s",
		m.mediaProxyBase, mode, width, height, url.QueryEscape(link)), nil
}

// EffectURL builds the link of an effect rendition on the media proxy.
func (m *MediaStorage) EffectURL(link string, effect entities.Effect) (string, error) {
	if !effect.Valid() {
		return "", entities.ErrUnknownEffect
	}
	return fmt.Sprintf("%s/effect/%s?source=%s",
		m.mediaProxyBase, effect, url.QueryEscape(link)), nil
}
