package index

import (
	"fmt"

	"lgit/internal/digest"
)

// Index lines are a fixed-width wire contract:
//
//	<mtime:14> <working:40> <staged:40> <committed:40> <path>
//
// with single-space separators. Field offsets are fixed because the
// working-hash and committed-hash fields may be the 40-space sentinel,
// which whitespace tokenization cannot recover.
const (
	mtimeWidth = 14

	workingOff   = mtimeWidth + 1
	stagedOff    = workingOff + digest.Size + 1
	committedOff = stagedOff + digest.Size + 1
	pathOff      = committedOff + digest.Size + 1
)

var separatorOffsets = [...]int{
	mtimeWidth,
	workingOff + digest.Size,
	stagedOff + digest.Size,
	committedOff + digest.Size,
}

func encodeEntry(e Entry) string {
	return fmt.Sprintf("%s %s %s %s %s",
		e.MTime, e.WorkingHash, e.StagedHash, e.CommittedHash, e.Path)
}

func decodeLine(line string) (Entry, error) {
	if len(line) <= pathOff {
		return Entry{}, fmt.Errorf("truncated entry (%d bytes)", len(line))
	}
	for _, off := range separatorOffsets {
		if line[off] != ' ' {
			return Entry{}, fmt.Errorf("missing field separator at byte %d", off)
		}
	}
	e := Entry{
		MTime:         line[:mtimeWidth],
		WorkingHash:   line[workingOff : workingOff+digest.Size],
		StagedHash:    line[stagedOff : stagedOff+digest.Size],
		CommittedHash: line[committedOff : committedOff+digest.Size],
		Path:          line[pathOff:],
	}
	if !digits(e.MTime) {
		return Entry{}, fmt.Errorf("malformed mtime %q", e.MTime)
	}
	if e.WorkingHash != digest.Sentinel && !hexDigest(e.WorkingHash) {
		return Entry{}, fmt.Errorf("malformed working digest %q", e.WorkingHash)
	}
	if !hexDigest(e.StagedHash) {
		return Entry{}, fmt.Errorf("malformed staged digest %q", e.StagedHash)
	}
	if e.CommittedHash != digest.Sentinel && !hexDigest(e.CommittedHash) {
		return Entry{}, fmt.Errorf("malformed committed digest %q", e.CommittedHash)
	}
	return e, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hexDigest(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
