package notation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"github.com/Neumenon/numtower/numeric"
)

// crcTable is the IEEE CRC-32 table.
var crcTable = crc32.MakeTable(crc32.IEEE)

// checksumPrefix starts a trailer comment. The value after it is the CRC-32
// of every byte before the ';' that opens the comment.
const checksumPrefix = "crc32="

func checksumTrailer(sum uint32) string {
	return fmt.Sprintf("; %s%08x\n", checksumPrefix, sum)
}

// parseChecksumComment extracts the CRC from a comment body (the text after
// ';'). ok is false for ordinary comments.
func parseChecksumComment(body string) (sum uint32, ok bool) {
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, checksumPrefix) {
		return 0, false
	}
	v, err := strconv.ParseUint(body[len(checksumPrefix):], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Digest computes sha256 over the canonical rendering of nums, one value
// per line. Equal sequences written by any Writer configuration hash the
// same.
func Digest(nums []numeric.Number) [32]byte {
	h := sha256.New()
	for _, n := range nums {
		h.Write([]byte(numeric.Format(n)))
		h.Write([]byte{'\n'})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DigestHex is Digest as a lowercase hex string.
func DigestHex(nums []numeric.Number) string {
	d := Digest(nums)
	return hex.EncodeToString(d[:])
}
