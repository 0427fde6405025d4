package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/SimaxBen/wadrari/wadrari/gateway"
)

// SpacesService stores media in a DigitalOcean Spaces bucket through the
// S3 API. It implements gateway.Uploader.
type SpacesService struct {
	client     *s3.Client
	bucket     string
	region     string
	MediaRoot  string
	AvatarRoot string
}

func NewSpacesService(key, secret, region, bucket, mediaRoot, avatarRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading spaces config: %w", err)
	}

	return &SpacesService{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		region:     region,
		MediaRoot:  strings.TrimPrefix(mediaRoot, "/"),
		AvatarRoot: strings.TrimPrefix(avatarRoot, "/"),
	}, nil
}

// Upload stores the request's content and returns its public URL. The
// file path is read first; the in-memory payload is the fallback for
// clients that could not stage a file.
func (s *SpacesService) Upload(ctx context.Context, req gateway.UploadRequest) (string, error) {
	bucket := req.Bucket
	if bucket == "" {
		bucket = s.bucket
	}
	if bucket == "" {
		return "", gateway.NewError(gateway.KindUploadMissingBucket, "no bucket configured")
	}

	body, ext, err := s.loadContent(req)
	if err != nil {
		return "", err
	}

	key := s.objectKey(req.PathPrefix, ext)
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         "public-read",
	})
	if err != nil {
		return "", classifyUploadError(err)
	}

	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", bucket, s.region, key), nil
}

func (s *SpacesService) loadContent(req gateway.UploadRequest) ([]byte, string, error) {
	if req.FilePath != "" {
		body, err := os.ReadFile(req.FilePath)
		if err == nil {
			return body, strings.TrimPrefix(path.Ext(req.FilePath), "."), nil
		}
		if len(req.Payload) == 0 {
			return nil, "", gateway.WrapError(gateway.KindValidation, "unreadable upload file", err)
		}
	}
	if len(req.Payload) == 0 {
		return nil, "", gateway.NewError(gateway.KindValidation, "empty upload")
	}
	return req.Payload, extFromContentType(req.ContentType), nil
}

func (s *SpacesService) objectKey(prefix, ext string) string {
	root := s.MediaRoot
	if prefix != "" {
		root = strings.TrimPrefix(prefix, "/")
	}
	name := uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	if root == "" {
		return name
	}
	return root + "/" + name
}

func extFromContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return ""
}

// classifyUploadError maps an S3 failure onto the upload error kinds the
// client renders.
func classifyUploadError(err error) *gateway.Error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return gateway.WrapError(gateway.KindUploadNetwork, "upload failed: network", err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "AccessDenied"), strings.Contains(msg, "InvalidAccessKeyId"),
		strings.Contains(msg, "SignatureDoesNotMatch"):
		return gateway.WrapError(gateway.KindUploadPermission, "upload failed: permission denied", err)
	case strings.Contains(msg, "NoSuchBucket"):
		return gateway.WrapError(gateway.KindUploadMissingBucket, "upload failed: bucket missing", err)
	case strings.Contains(msg, "PreconditionFailed"), strings.Contains(msg, "ObjectAlreadyExists"):
		return gateway.WrapError(gateway.KindUploadDuplicate, "upload failed: duplicate object", err)
	}
	return gateway.WrapError(gateway.KindUploadNetwork, "upload failed", err)
}
