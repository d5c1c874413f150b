// Package digest computes the content digests that identify blobs in the
// object store. Digests are rendered as 40 lowercase hex characters and are
// the only identity a blob has.
package digest

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/mmap"
)

// Size is the rendered digest length in characters.
const Size = 2 * sha1.Size

// Sentinel marks a path that has never been committed. It occupies the same
// field width as a real digest in the index file.
var Sentinel = strings.Repeat(" ", Size)

// Bytes returns the digest of data.
func Bytes(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// File returns the digest of the file's content. On the real OS filesystem
// the file is memory-mapped instead of read into a buffer; other backends
// fall back to a plain read.
func File(fsys afero.Fs, path string) (string, error) {
	if _, ok := fsys.(*afero.OsFs); ok {
		return mmapFile(path)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	return Bytes(data), nil
}

func mmapFile(path string) (string, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// Zero-length mappings have no backing data to read from.
	if r.Len() == 0 {
		return Bytes(nil), nil
	}

	h := sha1.New()
	buf := make([]byte, 256*1024)
	var off int64
	for {
		n, rerr := r.ReadAt(buf, off)
		if n > 0 {
			h.Write(buf[:n])
			off += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("read %q: %w", path, rerr)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
