// Package mmap maps source files read-only into memory.
//
//	m, err := mmap.Open("news.csv")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// On unix platforms the file is mapped with mmap(2) and advised for sequential
// access, which matches how tabular sources are decoded. Elsewhere the file is
// read into memory so callers see the same API.
package mmap
