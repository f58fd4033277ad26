package vectors

import (
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// A digestReader hashes everything read through it with BLAKE2b-256.
type digestReader struct {
	r io.Reader
	h hash.Hash
}

func newDigestReader(r io.Reader) (*digestReader, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	return &digestReader{r: io.TeeReader(r, h), h: h}, nil
}

func (d *digestReader) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

// Sum returns the digest of the bytes read so far.
func (d *digestReader) Sum() []byte {
	return d.h.Sum(nil)
}
