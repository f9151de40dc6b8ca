// Package filesystem writes the config files that mdlint generates.
package filesystem

import "os"

// WriteFileAtomic writes data to filename through a temporary file and a
// rename, so a reader sees either the old content or the new, never a mix.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return writeFileAtomic(filename, data, perm)
}

// AppendFileAtomic writes existing followed by data to filename.
func AppendFileAtomic(filename string, existing, data []byte, perm os.FileMode) error {
	out := make([]byte, 0, len(existing)+len(data))
	out = append(out, existing...)
	return WriteFileAtomic(filename, append(out, data...), perm)
}
