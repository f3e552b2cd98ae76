package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Size is the width of a digest in bytes.
const Size = md5.Size

// ErrMalformed is returned when a checksum string cannot be decoded.
var ErrMalformed = errors.New("malformed checksum")

// Digest is a fixed-width MD5 digest.
type Digest [Size]byte

// DecodeInto parses exactly 2*len(out) hexadecimal characters into out, most
// significant nibble first. out is left unchanged on error.
func DecodeInto(s string, out []byte) error {
	if len(s) != 2*len(out) {
		return fmt.Errorf("%w: got %d characters, want %d", ErrMalformed, len(s), 2*len(out))
	}
	buf := make([]byte, len(out))
	if _, err := hex.Decode(buf, []byte(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	copy(out, buf)
	return nil
}

// Decode parses a hexadecimal checksum string into a Digest.
func Decode(s string) (Digest, error) {
	var d Digest
	err := DecodeInto(s, d[:])
	return d, err
}

// String returns the lower-case hexadecimal form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether every byte of the digest is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Fold XOR-combines the given digests byte-wise.
func Fold(digests ...Digest) Digest {
	var out Digest
	for _, d := range digests {
		for i := range out {
			out[i] ^= d[i]
		}
	}
	return out
}

// Sum streams r through MD5 and returns the resulting digest.
func Sum(r io.Reader) (Digest, error) {
	var d Digest
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return d, fmt.Errorf("hashing content: %w", err)
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}
