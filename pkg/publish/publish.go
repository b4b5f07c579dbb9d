package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/arbor-ui/arbor/pkg/middleware"
	"github.com/arbor-ui/arbor/pkg/render"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// S3API is the subset of the S3 client used by the publisher.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// Options configures the publisher.
type Options struct {
	// Bucket is the S3 bucket name.
	Bucket string

	// Prefix is the key prefix under which files are uploaded.
	Prefix string

	// Prune removes remote keys under Prefix that were not part of
	// the published set.
	Prune bool

	// CacheControl is set on uploaded objects when non-empty.
	CacheControl string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result summarizes a publish run.
type Result struct {
	// Uploaded holds the keys that were uploaded, in upload order.
	Uploaded []string

	// Pruned holds the stale keys that were deleted.
	Pruned []string
}

// Publisher uploads files to S3.
type Publisher struct {
	client       S3API
	bucket       string
	prefix       string
	prune        bool
	cacheControl string
	log          *slog.Logger
	renderer     *render.Renderer
}

// NewPublisher creates a publisher for the given client and options.
func NewPublisher(client S3API, opts Options) *Publisher {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{
		client:       client,
		bucket:       opts.Bucket,
		prefix:       opts.Prefix,
		prune:        opts.Prune,
		cacheControl: opts.CacheControl,
		log:          log,
		renderer:     render.NewRenderer(render.RendererConfig{}),
	}
}

// PublishDir uploads every file under dir, keyed by its path relative
// to dir, and optionally prunes stale remote keys.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (*Result, error) {
	result := &Result{}
	keep := make(map[string]bool)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := p.prefix + filepath.ToSlash(rel)

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := p.put(ctx, key, data, contentType(path, data)); err != nil {
			return err
		}

		keep[key] = true
		result.Uploaded = append(result.Uploaded, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", dir, err)
	}

	middleware.RecordFilesPublished(len(result.Uploaded))
	p.log.Info("uploaded", "files", len(result.Uploaded), "bucket", p.bucket)

	if p.prune {
		pruned, err := p.pruneStale(ctx, keep)
		if err != nil {
			return nil, err
		}
		result.Pruned = pruned
	}

	return result, nil
}

// PublishPage renders a vnode tree and uploads it as an HTML page.
func (p *Publisher) PublishPage(ctx context.Context, key string, v vdom.VNode) error {
	html, err := p.renderer.RenderToString(v)
	if err != nil {
		return err
	}
	if strings.HasPrefix(html, "<html") {
		html = "<!DOCTYPE html>\n" + html
	}
	if err := p.put(ctx, p.prefix+key, []byte(html), "text/html; charset=utf-8"); err != nil {
		return err
	}
	middleware.RecordFilesPublished(1)
	return nil
}

// put uploads a single object.
func (p *Publisher) put(ctx context.Context, key string, data []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}
	if _, err := p.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	p.log.Debug("put", "key", key, "bytes", len(data), "type", contentType)
	return nil
}

// pruneStale deletes remote keys under the prefix that are not in keep.
func (p *Publisher) pruneStale(ctx context.Context, keep map[string]bool) ([]string, error) {
	var stale []string

	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", p.prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !keep[key] {
				stale = append(stale, key)
			}
		}
	}

	if len(stale) == 0 {
		return nil, nil
	}
	sort.Strings(stale)

	// DeleteObjects accepts at most 1000 keys per call.
	for start := 0; start < len(stale); start += 1000 {
		end := start + 1000
		if end > len(stale) {
			end = len(stale)
		}
		ids := make([]types.ObjectIdentifier, 0, end-start)
		for _, key := range stale[start:end] {
			ids = append(ids, types.ObjectIdentifier{Key: aws.String(key)})
		}
		_, err := p.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(p.bucket),
			Delete: &types.Delete{Objects: ids},
		})
		if err != nil {
			return nil, fmt.Errorf("prune: %w", err)
		}
	}

	p.log.Info("pruned", "keys", len(stale))
	return stale, nil
}

// contentType resolves the MIME type for a file, preferring the
// extension and falling back to content sniffing.
func contentType(path string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
