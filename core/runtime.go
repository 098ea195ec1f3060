package core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Runtime is the host chain interface the core depends on: a randomness
// beacon, a block-number accessor, and the hashing primitives used for pair
// identity and account derivation. It has no origin authenticator: every
// extrinsic takes the sender as an explicit argument and does not verify it.
type Runtime interface {
	// RandomSeed returns the chain's per-block randomness beacon value.
	RandomSeed() Hash

	// BlockNumber returns the current, monotonically increasing block
	// height.
	BlockNumber() uint64

	// Hash returns a cryptographic digest over the concatenation of parts,
	// used to derive fresh pair identities.
	Hash(parts ...[]byte) Hash

	// Blake2b256 returns the blake2b-256 digest of the concatenation of
	// parts, used for account derivation. Kept distinct from Hash because
	// the account-derivation domain-separation tag and digest choice must
	// stay fixed for backwards compatibility even if the runtime's
	// general-purpose Hash ever changes algorithm.
	Blake2b256(parts ...[]byte) Hash
}

// SimpleRuntime is a reference Runtime for standalone/demo/test use. Block
// number and randomness are caller-driven rather than consensus-driven.
type SimpleRuntime struct {
	height uint64
	seed   Hash
}

// NewSimpleRuntime returns a runtime seeded with height 1 and the given
// randomness seed.
func NewSimpleRuntime(seed Hash) *SimpleRuntime {
	return &SimpleRuntime{height: 1, seed: seed}
}

// AdvanceBlock increments the block height and installs a new seed, as a
// demo stand-in for the host chain producing a new block.
func (r *SimpleRuntime) AdvanceBlock(seed Hash) {
	r.height++
	r.seed = seed
}

func (r *SimpleRuntime) RandomSeed() Hash    { return r.seed }
func (r *SimpleRuntime) BlockNumber() uint64 { return r.height }

func (r *SimpleRuntime) Hash(parts ...[]byte) Hash {
	h, _ := blake2b.New256(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// blake2AccountTag is the domain-separation constant mixed into every
// derived pool account. Collisions with other derived-account schemes on
// the same chain would silently steal balances, so the exact bytes matter.
var blake2AccountTag = []byte("substrate/uniswap")

func (r *SimpleRuntime) Blake2b256(parts ...[]byte) Hash {
	h, _ := blake2b.New256(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// encodeUint64 is the stable tuple-field encoder used when building hash
// inputs.
func encodeUint64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func encodeUint32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}
