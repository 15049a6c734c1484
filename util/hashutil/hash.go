package hashutil

import (
	"bytes"
	"crypto/sha256"
	"sort"

	"blockrev/util/byteutil"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// Digest is a hash result that prints in base58check form.
type Digest []byte

// String returns the base58 encoding of the digest with a 4 byte checksum.
func (d Digest) String() string {
	b := make([]byte, 0, len(d)+4)
	b = append(b, d...)
	b = append(b, Checksum(d)...)
	return base58.Encode(b)
}

// Equal tells if two digests hold the same bytes.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// Hash160 returns hash160 of input data bytes.
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}

// Hash256 returns hash256 of input data bytes.
func Hash256(data []byte) []byte {
	return Sha256(Sha256(data))
}

// Sha256 returns sha256 of input data bytes.
func Sha256(data []byte) []byte {
	sha256H := sha256.New()
	sha256H.Reset()
	sha256H.Write(data)
	return sha256H.Sum(nil)
}

// Ripemd160 returns RIPEMD-160 hash bytes.
func Ripemd160(data []byte) []byte {
	ripemd160H := ripemd160.New()
	ripemd160H.Reset()
	ripemd160H.Write(data)
	return ripemd160H.Sum(nil)
}

// Checksum returns the checksum for a given piece of data
// using sha256 twice as the hash algorithm.
func Checksum(data []byte) []byte {
	hash := Hash256(data)
	return hash[:4]
}

// OrderedDigest returns hash256 of the raw bytes, so it changes
// whenever the element order changes.
func OrderedDigest(buf []byte) Digest {
	return Hash256(buf)
}

// Fingerprint returns a digest of the multiset of unitSize-wide blocks in
// buf. Reordering blocks keeps the fingerprint, altering any block's bytes
// does not.
func Fingerprint(buf []byte, unitSize int) (Digest, error) {
	count, err := byteutil.BlockCount(buf, unitSize)
	if err != nil {
		return nil, err
	}

	hashes := make([][]byte, count)
	for i := 0; i < count; i++ {
		hashes[i] = Hash160(buf[i*unitSize : (i+1)*unitSize])
	}

	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i], hashes[j]) < 0
	})

	return Hash256(bytes.Join(hashes, nil)), nil
}
