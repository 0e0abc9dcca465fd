package batch

import (
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to a temp file next to path and renames it into place,
// so a failed write never leaves a partial output.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { // #nosec G302 -- regular output file
		return err
	}

	return os.Rename(tmp.Name(), path)
}
