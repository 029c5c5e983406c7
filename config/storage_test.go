package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testS3Config() *S3Config {
	awsCfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
	}
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: "recipe-images",
	}
}

func TestGeneratePresignedURL(t *testing.T) {
	s3cfg := testS3Config()

	url, err := s3cfg.GeneratePresignedURL(context.Background(), "recipes/abc/cake.jpg", 15*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, url, "recipe-images")
	assert.Contains(t, url, "recipes/abc/cake.jpg")
	assert.Contains(t, url, "X-Amz-Signature")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestNewS3ConfigWithoutBucket(t *testing.T) {
	s3cfg, err := NewS3Config(context.Background(), &Config{})
	require.NoError(t, err)
	assert.Nil(t, s3cfg)
}
