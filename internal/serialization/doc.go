// Package serialization stores named arrays in the binary .nda format:
//
//	Format Structure:
//	  [4 bytes: Magic "NDAR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [4 bytes: reserved]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [8 bytes: Data Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the data section]
//	  [Header: JSON metadata]
//	  [Array data: little-endian elements, 64-byte aligned]
//
// Arrays are written in logical row-major order, so a strided or reversed
// view loads back as a contiguous array holding the same elements.
//
// Example usage:
//
//	err := serialization.WriteFile("weights.nda", map[string]*ndarray.Array[float64]{"w": w}, nil)
//
//	f, err := serialization.ReadFile("weights.nda")
//	w, err := serialization.Array[float64](f, "w")
package serialization
