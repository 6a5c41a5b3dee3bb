package util

import (
	"hash/fnv"
)

// HashStringToUInt64 maps s to a stable 64-bit key. The tag index relies on
// this being deterministic across runs.
func HashStringToUInt64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
