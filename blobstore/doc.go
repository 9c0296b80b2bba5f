// Package blobstore provides read access to the blobs that hold tabular sources.
//
// BlobStore is the interface newsdata loads sources through.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-memory blobs for tests and fixtures
//   - s3.Store: Amazon S3 with range reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
//	type Blob interface {
//	    io.Closer
//	    Size() int64
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, len) (io.ReadCloser, error)
//	}
//
// Stores that can materialize a whole blob more efficiently than a single
// range read (e.g. with parallel ranged GETs) may also implement Fetcher.
package blobstore
