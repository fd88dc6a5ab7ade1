package imaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsAllowedContentType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "IMAGE/PNG"}
	for _, ct := range allowed {
		require.True(t, IsAllowedContentType(ct), "content type %q", ct)
	}

	rejected := []string{"image/gif", "image/svg+xml", "application/pdf", "video/mp4", ""}
	for _, ct := range rejected {
		require.False(t, IsAllowedContentType(ct), "content type %q", ct)
	}
}

func TestSignUpload(t *testing.T) {
	svc, err := New(Config{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "fashionhub/products",
	})
	require.NoError(t, err)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sig, err := svc.SignUpload(now)
	require.NoError(t, err)

	require.NotEmpty(t, sig.Signature)
	require.Equal(t, "demo", sig.CloudName)
	require.Equal(t, "key123", sig.APIKey)
	require.Equal(t, "fashionhub/products", sig.Folder)
	require.NotZero(t, sig.Timestamp)

	// Same inputs yield the same signature
	again, err := svc.SignUpload(now)
	require.NoError(t, err)
	require.Equal(t, sig.Signature, again.Signature)
}
