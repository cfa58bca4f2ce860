package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// File is a decoded .nda stream. Arrays are extracted with Array.
type File struct {
	Header   Header
	version  uint32
	flags    uint32
	checksum [32]byte
	data     []byte
}

// ReaderOptions configures Read.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// ReadFile reads a .nda file with strict validation.
func ReadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file, ReaderOptions{ValidationLevel: ValidationStrict})
}

// Read decodes a .nda stream.
func Read(r io.Reader, opts ReaderOptions) (*File, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}

	f := &File{
		version: binary.LittleEndian.Uint32(fixed[4:8]),
		flags:   binary.LittleEndian.Uint32(fixed[8:12]),
	}
	if f.version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, f.version, FormatVersion)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	copy(f.checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &f.Header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	pad := padding(int64(FixedHeaderSize) + int64(headerSize))
	if _, err := io.CopyN(io.Discard, r, pad); err != nil {
		return nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	// The stored data size is untrusted; read incrementally.
	//nolint:gosec // G115: a data size above MaxInt64 fails the length check below
	data, err := io.ReadAll(io.LimitReader(r, int64(dataSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to read array data: %w", err)
	}
	if uint64(len(data)) != dataSize {
		return nil, fmt.Errorf("failed to read array data: %w", io.ErrUnexpectedEOF)
	}
	f.data = data

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), f.checksum); err != nil {
			return nil, err
		}
	}
	if err := ValidateHeader(&f.Header, int64(len(data)), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return f, nil
}

// Names returns the stored array names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Header.Arrays))
	for i, a := range f.Header.Arrays {
		names[i] = a.Name
	}
	return names
}

// Checksum returns the stored SHA-256 of the data section.
func (f *File) Checksum() [32]byte {
	return f.checksum
}

func (f *File) lookup(name string) (ArrayMeta, bool) {
	for _, a := range f.Header.Arrays {
		if a.Name == name {
			return a, true
		}
	}
	return ArrayMeta{}, false
}

// Array decodes the named array into a new contiguous array.
func Array[T Element](f *File, name string) (*ndarray.Array[T], error) {
	meta, ok := f.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrArrayNotFound, name)
	}
	dtype, elemSize := dtypeOf[T]()
	if meta.DType != dtype {
		return nil, fmt.Errorf("%w: array %q holds %s, requested %s", ErrDTypeMismatch, name, meta.DType, dtype)
	}

	dim, err := ndarray.NewDim(meta.Shape...)
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", name, err)
	}
	if dim.Size() > math.MaxInt/elemSize || int64(dim.Size()*elemSize) != meta.Size {
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Array:   name,
			Details: fmt.Sprintf("shape %v with %d-byte elements does not match %d bytes", meta.Shape, elemSize, meta.Size),
			Err:     ErrOutOfBounds,
		}
	}
	if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(f.data)) {
		return nil, &ValidationError{
			Type:    "out_of_bounds",
			Array:   name,
			Details: fmt.Sprintf("offset %d + size %d > data_size %d", meta.Offset, meta.Size, len(f.data)),
			Err:     ErrOutOfBounds,
		}
	}

	values := make([]T, dim.Size())
	raw := f.data[meta.Offset : meta.Offset+meta.Size]
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("failed to decode array %s: %w", name, err)
	}
	return ndarray.FromSlice(dim, values)
}
