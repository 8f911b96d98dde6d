// Package blobstore provides storage abstraction for datasets and run
// snapshots.
//
// BlobStore is the interface for reading and writing immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in implementations
//
//   - LocalStore: local filesystem with mmap reads and atomic replace
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3 with ranged reads and streaming uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom implementations
//
// Implement the BlobStore interface to support other backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)           // open for reading
//	    Create(ctx, name) (WritableBlob, error) // create for streaming writes
//	    Put(ctx, name, data) error              // atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
