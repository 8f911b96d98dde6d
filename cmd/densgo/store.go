package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/densgo/blobstore"
	"github.com/hupe1980/densgo/blobstore/s3"
)

// openStore maps a target URI to a blob store and a blob name within it.
// Local paths use the containing directory as the store root; s3:// URIs
// use the bucket with the key as the blob name.
func openStore(ctx context.Context, target string) (blobstore.BlobStore, string, error) {
	if after, ok := strings.CutPrefix(target, "s3://"); ok {
		bucket, key, found := strings.Cut(after, "/")
		if !found || bucket == "" || key == "" {
			return nil, "", fmt.Errorf("invalid s3 target %q (want s3://bucket/key)", target)
		}
		store, err := s3.New(ctx, bucket, "")
		if err != nil {
			return nil, "", err
		}
		return store, key, nil
	}

	dir, name := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	if name == "" {
		return nil, "", fmt.Errorf("invalid target %q: not a file path", target)
	}
	store, err := blobstore.NewLocalStore(dir)
	if err != nil {
		return nil, "", err
	}
	return store, name, nil
}
