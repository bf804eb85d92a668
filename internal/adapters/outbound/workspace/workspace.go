package workspace

import (
	"encoding/binary"
	"encoding/hex"
	"os"

	"github.com/cespare/xxhash/v2"
)

// OSWorkspace implements domain.Workspace on the local filesystem.
type OSWorkspace struct{}

func New() *OSWorkspace {
	return &OSWorkspace{}
}

func (w *OSWorkspace) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile overwrites path in place. The file is truncated and rewritten,
// not replaced, so an interrupted write can leave it partial.
func (w *OSWorkspace) WriteFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

// Hash returns the xxHash64 of data as 16 hex characters.
func (w *OSWorkspace) Hash(data []byte) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64(data))
	return hex.EncodeToString(buf[:])
}
