package dataset

import (
	"context"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/hupe1980/densgo/blobstore"
	"github.com/hupe1980/densgo/engine"
	"github.com/hupe1980/densgo/geom"
)

// Info describes a loaded dataset blob. The fingerprint is an xxh3 hash of
// the raw bytes, recorded for provenance so a run can be tied back to the
// exact input it consumed.
type Info struct {
	Name        string
	Points      int
	Bytes       int64
	Fingerprint uint64
}

// String implements fmt.Stringer.
func (i Info) String() string {
	return fmt.Sprintf("%s: %d points, %d bytes, fingerprint %016x", i.Name, i.Points, i.Bytes, i.Fingerprint)
}

// Load reads and parses the named dataset blob.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(o *Options)) ([]geom.Point, Info, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, Info{}, fmt.Errorf("dataset: load %q: %w", name, err)
	}

	points, err := Parse(data, optFns...)
	if err != nil {
		return nil, Info{}, err
	}

	return points, Info{
		Name:        name,
		Points:      len(points),
		Bytes:       int64(len(data)),
		Fingerprint: xxh3.Hash(data),
	}, nil
}

// Store writes clustering results as the named blob and returns its Info.
func Store(ctx context.Context, store blobstore.BlobStore, name string, points []geom.Point, labels []engine.Label) (Info, error) {
	data, err := FormatResults(points, labels)
	if err != nil {
		return Info{}, err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return Info{}, fmt.Errorf("dataset: store %q: %w", name, err)
	}

	return Info{
		Name:        name,
		Points:      len(points),
		Bytes:       int64(len(data)),
		Fingerprint: xxh3.Hash(data),
	}, nil
}
