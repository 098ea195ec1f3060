package core

// DeriveAccount computes the deterministic, keyless account that custodies
// a trade pair's reserves. It is a pure function of
// (base, quote, hash): entropy = blake2_256(tag || base || quote || hash),
// and the first 20 bytes of entropy become the account id. The domain tag
// is mandatory — without it, this derivation could collide with an
// unrelated derived-account scheme sharing the same chain and silently
// steal balances.
func DeriveAccount(rt Runtime, base, quote TokenID, hash Hash) Address {
	entropy := rt.Blake2b256(blake2AccountTag, encodeUint32(uint32(base)), encodeUint32(uint32(quote)), hash[:])
	var a Address
	copy(a[:], entropy[:len(a)])
	return a
}
