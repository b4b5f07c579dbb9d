// Package publish uploads rendered pages and built directories to S3
// for static hosting.
//
// The publisher takes an interface-typed S3 client, so anything that
// implements PutObject, ListObjectsV2, and DeleteObjects works — the
// real aws-sdk-go-v2 client in production, a fake in tests.
//
//	cfg, _ := awsconfig.LoadDefaultConfig(ctx)
//	p := publish.NewPublisher(s3.NewFromConfig(cfg), publish.Options{
//	    Bucket: "my-site",
//	    Prefix: "www/",
//	    Prune:  true,
//	})
//	result, err := p.PublishDir(ctx, "dist")
package publish
