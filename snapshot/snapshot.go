package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/featmat/codec"
	"github.com/hupe1980/featmat/dfm"
)

var (
	// ErrInvalidFormat indicates a file that is not a matrix snapshot or is
	// structurally corrupt.
	ErrInvalidFormat = errors.New("invalid snapshot format")
	// ErrUnsupportedVersion indicates a snapshot written by a newer format
	// version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrUnknownCodec indicates a snapshot whose codec name is not built in.
	ErrUnknownCodec = errors.New("unknown snapshot codec")
)

var (
	snapshotMagic   = [4]byte{'F', 'M', 'S', '0'}
	snapshotVersion = uint16(1)
)

type options struct {
	codec       codec.Codec
	compression Compression
}

// Option configures Save/Write behavior. Load/Read need no options: the
// header tells them everything.
type Option func(*options)

// WithCodec overrides the codec used for newly written snapshots.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the compression scheme for newly written snapshots.
// The default is CompressionZSTD.
func WithCompression(scheme Compression) Option {
	return func(o *options) {
		o.compression = scheme
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Write serializes the matrix to w.
func Write(w io.Writer, m *dfm.DFM, optFns ...Option) error {
	if m == nil {
		return fmt.Errorf("nil matrix")
	}
	o := applyOptions(optFns)

	name := o.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name too long: %q", name)
	}

	header := make([]byte, 0, 4+2+2+1+1+len(name))
	header = append(header, snapshotMagic[:]...)
	var fixed [4]byte
	binary.LittleEndian.PutUint16(fixed[0:2], snapshotVersion)
	// fixed[2:4] reserved flags
	header = append(header, fixed[:]...)
	header = append(header, byte(o.compression), byte(len(name)))
	header = append(header, name...)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	payload, err := o.codec.Marshal(m.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	block, err := compressBlock(payload, o.compression)
	if err != nil {
		return fmt.Errorf("failed to compress snapshot: %w", err)
	}
	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("failed to write snapshot payload: %w", err)
	}
	return nil
}

// Read deserializes a matrix from r.
func Read(r io.Reader) (*dfm.DFM, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read magic: %w", ErrInvalidFormat, err)
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidFormat)
	}

	var fixed [6]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrInvalidFormat, err)
	}
	version := binary.LittleEndian.Uint16(fixed[0:2])
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	scheme := Compression(fixed[4])
	nameLen := int(fixed[5])

	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return nil, fmt.Errorf("%w: failed to read codec name: %w", ErrInvalidFormat, err)
	}
	c, ok := codec.ByName(string(nameBytes))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBytes))
	}

	block, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read payload: %w", ErrInvalidFormat, err)
	}
	payload, err := decompressBlock(block, scheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	var s dfm.Snapshot
	if err := c.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("%w: failed to decode snapshot: %w", ErrInvalidFormat, err)
	}
	return dfm.FromSnapshot(&s)
}

// Save writes the matrix to a file at path, replacing any existing file.
// The write goes through a temp file and rename so a crash never leaves a
// half-written snapshot at path.
func Save(path string, m *dfm.DFM, optFns ...Option) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	if err := Write(bw, m, optFns...); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	return nil
}

// Load reads a matrix from a file at path.
func Load(path string) (*dfm.DFM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
