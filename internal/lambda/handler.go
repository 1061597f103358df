package lambda

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/commands"
	"github.com/stahnma/gh-explore/internal/export"
)

// exportPages caps how much of the public listing one invocation uploads.
const exportPages = 10

// PutObjectAPI is the part of the S3 client the handler uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewHandler returns a Lambda handler function that exports a repositories
// snapshot and uploads it to S3.
func NewHandler(app *commands.App) func(context.Context, any) (string, error) {
	return newHandler(app, time.Now, func(ctx context.Context) (PutObjectAPI, error) {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(app.Config.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return s3.NewFromConfig(cfg), nil
	})
}

func newHandler(app *commands.App, now func() time.Time, newS3 func(context.Context) (PutObjectAPI, error)) func(context.Context, any) (string, error) {
	return func(ctx context.Context, _ any) (string, error) {
		bucket := app.Config.S3Bucket
		key := app.Config.S3ObjectKey
		if bucket == "" || key == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		var buf bytes.Buffer
		err := app.ExportJSON(ctx, &buf, commands.ExportOptions{Kind: browse.Repositories, Pages: exportPages})
		if err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
		if buf.Len() == 0 {
			return "", fmt.Errorf("export command produced no output")
		}

		if strings.Contains(key, "%s") {
			key = fmt.Sprintf(key, now().Format(export.DateFormat))
		}

		svc, err := newS3(ctx)
		if err != nil {
			return "", err
		}
		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload file to S3: %w", err)
		}

		app.Logger.Info("uploaded export", slog.String("bucket", bucket), slog.String("key", key))
		return "Lambda executed successfully and output uploaded to S3", nil
	}
}
