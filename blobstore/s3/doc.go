// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Datasets and snapshots map to single immutable objects. Open verifies
// existence with HeadObject and serves reads as ranged GetObjects;
// Create streams through manager.Uploader so large results never buffer
// fully in memory.
package s3
