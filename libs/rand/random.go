// Package rand generates random node data for tests: block hashes,
// wallet ids and raw amounts. None of it is suitable for cryptographic use.
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	mrand "math/rand"
	"strings"

	cmtsync "github.com/nanorpc/nanorpc/libs/sync"
)

const (
	// HashSize is the size in bytes of a block hash or a wallet id.
	HashSize = 32

	// maxRawDigits is the length of the largest raw amount, the total
	// supply 340282366920938463463374607431768211455.
	maxRawDigits = 39

	strChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Rand is a prng seeded with OS randomness. It is safe for concurrent use.
type Rand struct {
	cmtsync.Mutex
	rand *mrand.Rand
}

var grand = NewRand()

func NewRand() *Rand {
	r := &Rand{}
	r.reset(newSeed())
	return r
}

func newSeed() int64 {
	var bz [8]byte
	if _, err := crand.Read(bz[:]); err != nil {
		panic(err)
	}
	return int64(binary.BigEndian.Uint64(bz[:]))
}

func (r *Rand) reset(seed int64) {
	//nolint:gosec
	r.rand = mrand.New(mrand.NewSource(seed))
}

// ----------------------------------------
// Global functions

func Seed(seed int64) {
	grand.Seed(seed)
}

func Str(length int) string {
	return grand.Str(length)
}

func Bytes(n int) []byte {
	return grand.Bytes(n)
}

func Intn(n int) int {
	return grand.Intn(n)
}

// Hash returns an upper-case hex block hash.
func Hash() string {
	return grand.Hash()
}

// Raw returns a raw amount between 1 and 10^39-1 as a decimal string.
func Raw() string {
	return grand.Raw()
}

// ----------------------------------------

func (r *Rand) Seed(seed int64) {
	r.Lock()
	r.reset(seed)
	r.Unlock()
}

func (r *Rand) Str(length int) string {
	if length <= 0 {
		return ""
	}
	chars := make([]byte, length)
	r.Lock()
	for i := range chars {
		chars[i] = strChars[r.rand.Intn(len(strChars))]
	}
	r.Unlock()
	return string(chars)
}

func (r *Rand) Bytes(n int) []byte {
	bs := make([]byte, n)
	r.Lock()
	r.rand.Read(bs)
	r.Unlock()
	return bs
}

func (r *Rand) Intn(n int) int {
	r.Lock()
	i := r.rand.Intn(n)
	r.Unlock()
	return i
}

func (r *Rand) Hash() string {
	return strings.ToUpper(hex.EncodeToString(r.Bytes(HashSize)))
}

func (r *Rand) Raw() string {
	r.Lock()
	defer r.Unlock()
	digits := make([]byte, 1+r.rand.Intn(maxRawDigits))
	digits[0] = '1' + byte(r.rand.Intn(9))
	for i := 1; i < len(digits); i++ {
		digits[i] = '0' + byte(r.rand.Intn(10))
	}
	return string(digits)
}
