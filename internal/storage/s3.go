// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the media store: binaries live in an
// S3-compatible bucket and are served through a transformation CDN. It
// wraps the AWS SDK v2 and is configured for path-style access.
//
// Object keys double as CDN asset identifiers, so keys carry no file
// extension; the CDN negotiates the delivery format.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const (
	// uploadTimeout bounds a single PutObject call. A stuck upload maps to
	// a gateway-timeout response, not a hung admin request.
	uploadTimeout = 30 * time.Second

	// deleteTimeout bounds a single DeleteObject call.
	deleteTimeout = 10 * time.Second

	// maxInlineSize caps decoded inline (data-URI) payloads at 10 MB.
	maxInlineSize = 10 << 20
)

// ErrInvalidImage marks an inline image payload the client sent malformed:
// disallowed type, broken base64, empty, or over the size cap. It is a
// client error, distinct from a storage call failing.
var ErrInvalidImage = errors.New("invalid image payload")

// allowedInlineTypes are MIME types accepted for inline-encoded uploads.
var allowedInlineTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Client wraps an S3 client for media operations on a single public bucket.
type Client struct {
	s3       *s3.Client
	bucket   string
	endpoint string
	cdnBase  string // delivery origin; transformation URLs are built on it
}

// New creates a storage client with path-style addressing and static
// credentials. Returns (nil, nil) if endpoint or credentials are empty,
// allowing the app to start without storage.
func New(endpoint, region, accessKey, secretKey, bucket, cdnBase string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:       s3Client,
		bucket:   bucket,
		endpoint: endpoint,
		cdnBase:  strings.TrimRight(cdnBase, "/"),
	}, nil
}

// Upload stores an object under the given asset id with public-read ACL.
func (c *Client) Upload(ctx context.Context, assetID, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(assetID),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("storage upload %s: %w", assetID, err)
	}
	return nil
}

// UploadBytes uploads raw bytes under a fresh asset id in the given folder
// and returns the id plus its delivery URL.
func (c *Client) UploadBytes(ctx context.Context, folder, contentType string, data []byte) (assetID, url string, err error) {
	now := time.Now()
	assetID = fmt.Sprintf("%s/%d/%02d/%s", folder, now.Year(), now.Month(), uuid.New().String())
	if err := c.Upload(ctx, assetID, contentType, data); err != nil {
		return "", "", err
	}
	return assetID, c.FileURL(assetID), nil
}

// UploadDataURI decodes an inline base64 data URI, validates its type and
// size, and uploads it under a fresh asset id in the given folder.
func (c *Client) UploadDataURI(ctx context.Context, folder, dataURI string) (assetID, url string, err error) {
	contentType, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", "", err
	}
	return c.UploadBytes(ctx, folder, contentType, data)
}

// Delete removes the object backing an asset id. Callers decide whether a
// failure blocks the surrounding write; most treat it as best-effort.
func (c *Client) Delete(ctx context.Context, assetID string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(assetID),
	})
	if err != nil {
		return fmt.Errorf("storage delete %s: %w", assetID, err)
	}
	return nil
}

// FileURL returns the delivery URL for an asset id. Uses the CDN origin if
// configured, otherwise a path-style bucket URL.
func (c *Client) FileURL(assetID string) string {
	if c.cdnBase != "" {
		return c.cdnBase + "/upload/" + assetID
	}
	return c.endpoint + "/" + c.bucket + "/" + assetID
}

// IsDataURI reports whether the value is an inline base64-encoded image.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ";base64,")
}

// DecodeDataURI parses "data:<type>;base64,<payload>" into its content type
// and decoded bytes, enforcing the allowed types and size cap. All failures
// wrap ErrInvalidImage.
func DecodeDataURI(s string) (contentType string, data []byte, err error) {
	if !IsDataURI(s) {
		return "", nil, fmt.Errorf("%w: not an inline-encoded image", ErrInvalidImage)
	}

	meta, payload, _ := strings.Cut(s[len("data:"):], ";base64,")
	contentType = strings.TrimSpace(meta)
	if !allowedInlineTypes[contentType] {
		return "", nil, fmt.Errorf("%w: image type %q is not allowed", ErrInvalidImage, contentType)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: decode base64: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: inline image is empty", ErrInvalidImage)
	}
	if len(data) > maxInlineSize {
		return "", nil, fmt.Errorf("%w: inline image too large: %d bytes exceeds %d", ErrInvalidImage, len(data), maxInlineSize)
	}
	return contentType, data, nil
}
