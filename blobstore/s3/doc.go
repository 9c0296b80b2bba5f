// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	ds, err := newsdata.Load(ctx, store, "worldnews.csv.zst", 50)
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel ranged downloads when a whole source is materialized
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints with path-style addressing (LocalStack, MinIO gateways)
package s3
