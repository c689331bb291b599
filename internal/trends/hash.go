package trends

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// fingerprint hashes the sorted, concatenated ids. The digest only detects
// changes between runs.
func fingerprint(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	sum := md5.Sum([]byte(strings.Join(sorted, "")))
	return hex.EncodeToString(sum[:])
}
