package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Write encodes arrays, sorted by name, as one .nda stream.
func Write[T Element](w io.Writer, arrays map[string]*ndarray.Array[T], metadata map[string]string) error {
	if len(arrays) > MaxArrayCount {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyArrays, len(arrays), MaxArrayCount)
	}

	dtype, elemSize := dtypeOf[T]()
	header := Header{
		FormatVersion: FormatVersion,
		Arrays:        make([]ArrayMeta, 0, len(arrays)),
		Metadata:      metadata,
	}

	var data bytes.Buffer
	for _, name := range slices.Sorted(maps.Keys(arrays)) {
		if err := ValidateArrayName(name); err != nil {
			return err
		}
		a := arrays[name]
		values := slices.Collect(a.Values())
		offset := int64(data.Len())
		if err := binary.Write(&data, binary.LittleEndian, values); err != nil {
			return fmt.Errorf("failed to encode array %s: %w", name, err)
		}
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   name,
			DType:  dtype,
			Shape:  a.Shape(),
			Offset: offset,
			Size:   int64(len(values) * elemSize),
		})
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed, MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], 0)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(data.Len()))
	sum := ComputeChecksum(data.Bytes())
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], sum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if pad := padding(int64(FixedHeaderSize + len(headerJSON))); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}
	dataSize := data.Len()
	if _, err := data.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write array data: %w", err)
	}

	slog.Debug("serialization: wrote arrays", "count", len(header.Arrays), "dtype", dtype, "bytes", dataSize)
	return nil
}

// WriteFile writes arrays to a new .nda file at path.
func WriteFile[T Element](path string, arrays map[string]*ndarray.Array[T], metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, arrays, metadata); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
