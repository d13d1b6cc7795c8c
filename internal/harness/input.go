package harness

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// #region paths
// InputPaths lists the files that may hold the input of day/part, most
// specific first: <data>/inputs/DD.txt for real input, and
// <data>/examples/DD-P.txt then <data>/examples/DD.txt for examples.
func InputPaths(dataDir string, day, part int, src Source) []string {
	name := fmt.Sprintf("%02d.txt", day)
	if src != Example {
		return []string{filepath.Join(dataDir, "inputs", name)}
	}
	return []string{
		filepath.Join(dataDir, "examples", fmt.Sprintf("%02d-%d.txt", day, part)),
		filepath.Join(dataDir, "examples", name),
	}
}

// LoadInput reads the first existing file of InputPaths.
func LoadInput(dataDir string, day, part int, src Source) ([]byte, error) {
	for _, path := range InputPaths(dataDir, day, part, src) {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read input %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("day %d part %d (%s): %w", day, part, src, ErrInputNotFound)
}

// #endregion paths

// #region digest
// Digest returns the hex BLAKE3 hash of input, used as the cache key.
func Digest(input []byte) string {
	sum := blake3.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// #endregion digest
