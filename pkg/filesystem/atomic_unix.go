//go:build !windows

package filesystem

import (
	"os"

	"github.com/google/renameio/v2"
)

func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
