package s3_test

import (
	"context"
	"testing"

	"hotelinv/config"
	"hotelinv/infras/otel/mocks"
	"hotelinv/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(cfg *config.Config)
		expected string
	}{
		{
			name: "public domain",
			setup: func(cfg *config.Config) {
				cfg.External.S3.PublicDomain = "https://cdn.hotel.vn/"
				cfg.External.S3.BucketName = "reports"
			},
			expected: "https://cdn.hotel.vn/daily/2025-06-01.pdf",
		},
		{
			name: "api endpoint fallback",
			setup: func(cfg *config.Config) {
				cfg.External.S3.APIEndpoint = "https://s3.local"
				cfg.External.S3.BucketName = "reports"
			},
			expected: "https://s3.local/reports/daily/2025-06-01.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			tt.setup(cfg)

			svc := s3.New(cfg, mocks.NewOtel())

			assert.Equal(t, tt.expected, svc.ObjectURL("daily", "2025-06-01.pdf"))
		})
	}
}

func TestUploadWithoutBucket(t *testing.T) {
	svc := s3.New(&config.Config{}, mocks.NewOtel())

	_, err := svc.UploadFileBytes(context.Background(), "daily", "x.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, s3.ErrNotConfigured)
	assert.ErrorIs(t, svc.DeleteFile(context.Background(), "daily", "x.pdf"), s3.ErrNotConfigured)
}
