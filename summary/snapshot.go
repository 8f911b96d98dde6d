package summary

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/hupe1980/densgo/blobstore"
)

const (
	// MagicNumber identifies snapshot blobs (ASCII "DGS1").
	MagicNumber = 0x44475331
	// Version is the current snapshot format version.
	Version = 0x00010000
)

var (
	// ErrInvalidMagic is returned when a blob is not a snapshot.
	ErrInvalidMagic = errors.New("summary: invalid magic number")
	// ErrInvalidVersion is returned for snapshots from an unknown format
	// version.
	ErrInvalidVersion = errors.New("summary: unsupported version")
	// ErrCorruptSnapshot is returned when the payload cannot be decoded.
	ErrCorruptSnapshot = errors.New("summary: corrupt snapshot")
)

// Snapshot ties a Summary to the run that produced it.
//
// Layout: a fixed header (magic, version, compression byte, 16-byte run
// id, point and cluster counts) followed by the payload, which holds one
// (id, serialized bitmap) record per cluster and a final noise bitmap.
// Only the payload is compressed; the header stays readable without a
// decoder.
type Snapshot struct {
	RunID   uuid.UUID
	Summary *Summary
}

// Encode serializes the snapshot with the given payload compression.
func (s *Snapshot) Encode(c Compression) ([]byte, error) {
	var payload bytes.Buffer
	for _, cl := range s.Summary.Clusters {
		var idBuf [8]byte
		binary.LittleEndian.PutUint64(idBuf[:], uint64(cl.ID))
		payload.Write(idBuf[:])
		if err := writeBitmap(&payload, cl.Members); err != nil {
			return nil, err
		}
	}
	if err := writeBitmap(&payload, s.Summary.Noise); err != nil {
		return nil, err
	}

	compressed, err := compress(payload.Bytes(), c)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	var header [33]byte
	binary.LittleEndian.PutUint32(header[0:], MagicNumber)
	binary.LittleEndian.PutUint32(header[4:], Version)
	header[8] = byte(c)
	copy(header[9:25], s.RunID[:])
	binary.LittleEndian.PutUint32(header[25:], uint32(s.Summary.Points))
	binary.LittleEndian.PutUint32(header[29:], uint32(len(s.Summary.Clusters)))
	out.Write(header[:])
	out.Write(compressed)
	return out.Bytes(), nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < 33 {
		return nil, ErrCorruptSnapshot
	}
	if magic := binary.LittleEndian.Uint32(data[0:]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, magic)
	}
	if v := binary.LittleEndian.Uint32(data[4:]); v != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, v)
	}

	c := Compression(data[8])
	var runID uuid.UUID
	copy(runID[:], data[9:25])
	points := int(binary.LittleEndian.Uint32(data[25:]))
	clusterCount := int(binary.LittleEndian.Uint32(data[29:]))

	payload, err := decompress(data[33:], c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	r := bytes.NewReader(payload)
	clusters := make([]Cluster, 0, clusterCount)
	for i := 0; i < clusterCount; i++ {
		var idBuf [8]byte
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return nil, ErrCorruptSnapshot
		}
		bm, err := readBitmap(r)
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, Cluster{
			ID:      int64(binary.LittleEndian.Uint64(idBuf[:])),
			Members: bm,
		})
	}
	noise, err := readBitmap(r)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		RunID: runID,
		Summary: &Summary{
			Clusters: clusters,
			Noise:    noise,
			Points:   points,
		},
	}, nil
}

// Save encodes the snapshot and writes it as the named blob.
func (s *Snapshot) Save(ctx context.Context, store blobstore.BlobStore, name string, c Compression) error {
	data, err := s.Encode(c)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("summary: save %q: %w", name, err)
	}
	return nil
}

// LoadSnapshot reads and decodes the named snapshot blob.
func LoadSnapshot(ctx context.Context, store blobstore.BlobStore, name string) (*Snapshot, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("summary: load %q: %w", name, err)
	}
	return Decode(data)
}

func writeBitmap(buf *bytes.Buffer, bm *roaring.Bitmap) error {
	data, err := bm.ToBytes()
	if err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf.Write(lenBuf[:])
	buf.Write(data)
	return nil
}

func readBitmap(r *bytes.Reader) (*roaring.Bitmap, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, ErrCorruptSnapshot
	}
	data := make([]byte, binary.LittleEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, ErrCorruptSnapshot
	}
	bm := roaring.New()
	if err := bm.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return bm, nil
}
