// Package imaging signs direct-to-Cloudinary uploads and removes assets
// that are no longer referenced by the catalog.
package imaging

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// allowedFormats is the strict format list enforced on signed uploads
const allowedFormats = "jpg,png,webp"

// allowedContentTypes are the MIME types a client may upload
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedContentType reports whether the MIME type may be uploaded.
// Anything else (gif included) is rejected before a signature is issued.
func IsAllowedContentType(contentType string) bool {
	return allowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// Config holds the Cloudinary account settings
type Config struct {
	CloudName      string
	APIKey         string
	APISecret      string
	Folder         string
	Transformation string
}

// Service produces upload signatures and deletes uploaded assets
type Service struct {
	cfg Config
	cld *cloudinary.Cloudinary
}

// New creates a new imaging service
func New(cfg Config) (*Service, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Service{cfg: cfg, cld: cld}, nil
}

// UploadSignature is everything a client needs for a signed direct upload
type UploadSignature struct {
	Signature      string `json:"signature"`
	Timestamp      int64  `json:"timestamp"`
	APIKey         string `json:"api_key"`
	CloudName      string `json:"cloud_name"`
	Folder         string `json:"folder,omitempty"`
	Transformation string `json:"transformation,omitempty"`
	AllowedFormats string `json:"allowed_formats"`
}

// SignUpload signs the upload parameters for the given moment. The
// signed parameter set pins the folder, transformation and format list,
// so the client cannot upload outside them.
func (s *Service) SignUpload(now time.Time) (*UploadSignature, error) {
	ts := now.Unix()

	params := url.Values{}
	params.Set("timestamp", fmt.Sprintf("%d", ts))
	params.Set("allowed_formats", allowedFormats)
	if s.cfg.Folder != "" {
		params.Set("folder", s.cfg.Folder)
	}
	if s.cfg.Transformation != "" {
		params.Set("transformation", s.cfg.Transformation)
	}

	signature, err := api.SignParameters(params, s.cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload parameters: %w", err)
	}

	return &UploadSignature{
		Signature:      signature,
		Timestamp:      ts,
		APIKey:         s.cfg.APIKey,
		CloudName:      s.cfg.CloudName,
		Folder:         s.cfg.Folder,
		Transformation: s.cfg.Transformation,
		AllowedFormats: allowedFormats,
	}, nil
}

// Destroy removes an uploaded asset. Used as the compensating action
// when a product is deleted or its creation fails after upload.
func (s *Service) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
