package serialization

import "reflect"

// Format constants.
const (
	MagicBytes      = "NDAR"
	FormatVersion   = 1
	FixedHeaderSize = 64   // fixed header size (0x40 bytes)
	HeaderAlignment = 64   // array data starts on a 64-byte boundary
	ChecksumOffset  = 0x20 // checksum offset in the fixed header
	ChecksumSize    = 32   // SHA-256 checksum size
)

// Header represents the JSON header in a .nda file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Arrays        []ArrayMeta       `json:"arrays"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ArrayMeta describes an array in the .nda file.
type ArrayMeta struct {
	Name   string `json:"name"`   // Array name (e.g., "layer.0.weight")
	DType  string `json:"dtype"`  // Element type (e.g., "float64", "int32")
	Shape  []int  `json:"shape"`  // Array shape
	Offset int64  `json:"offset"` // Bytes from the start of the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// Element is the set of fixed-size types that can be stored.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// dtypeOf returns the dtype name and byte size of T.
func dtypeOf[T Element]() (string, int) {
	t := reflect.TypeFor[T]()
	return t.Kind().String(), int(t.Size())
}

func padding(pos int64) int64 {
	return (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
}
