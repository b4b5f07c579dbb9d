package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/arbor-ui/arbor/internal/config"
	"github.com/arbor-ui/arbor/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
		output string
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the output directory to S3",
		Long: `Upload the build output directory to an S3 bucket for
static hosting.

Credentials are read from the environment (AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY, and optionally AWS_SESSION_TOKEN).

Examples:
  arbor publish
  arbor publish --bucket=my-site --region=eu-west-1
  arbor publish --prune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, region, prefix, output, prune)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from arbor.json)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region (default from arbor.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from arbor.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to publish (default from arbor.json)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote keys missing locally")

	return cmd
}

func runPublish(bucket, region, prefix, output string, prune bool) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	// Command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if output != "" {
		cfg.Publish.Output = output
	}
	if prune {
		cfg.Publish.Prune = true
	}

	if cfg.Publish.Bucket == "" {
		errorMsg("No bucket configured")
		info("Set publish.bucket in arbor.json or pass --bucket")
		return fmt.Errorf("publish: no bucket")
	}
	if _, err := os.Stat(cfg.OutputDir()); err != nil {
		errorMsg("Output directory %s not found", cfg.OutputDir())
		return err
	}

	client := s3.New(s3.Options{
		Region:      cfg.Publish.Region,
		Credentials: envCredentials(),
	})

	p := publish.NewPublisher(client, publish.Options{
		Bucket: cfg.Publish.Bucket,
		Prefix: cfg.Publish.Prefix,
		Prune:  cfg.Publish.Prune,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	printBanner()
	fmt.Println("  publish")
	fmt.Println()
	info("Uploading %s to s3://%s/%s", cfg.OutputDir(), cfg.Publish.Bucket, cfg.Publish.Prefix)

	result, err := p.PublishDir(context.Background(), cfg.OutputDir())
	if err != nil {
		return err
	}

	success("Uploaded %d file(s)", len(result.Uploaded))
	if len(result.Pruned) > 0 {
		success("Pruned %d stale key(s)", len(result.Pruned))
	}
	return nil
}

// envCredentials resolves static credentials from the environment.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}, nil
	})
}
