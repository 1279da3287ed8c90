// Package testkit provides rapid generators shared by the property tests.
package testkit

import (
	"pgregory.net/rapid"

	"github.com/o-korpi/types/collection"
	"github.com/o-korpi/types/functional"
)

// KeysGen generates between minLen and maxLen distinct map keys.
func KeysGen(minLen, maxLen int) *rapid.Generator[[]string] {
	return rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,8}`), minLen, maxLen, rapid.ID)
}

// EntriesGen generates between minLen and maxLen entries with distinct keys.
func EntriesGen(minLen, maxLen int) *rapid.Generator[[]functional.Pair[string, int]] {
	return rapid.Custom(func(t *rapid.T) []functional.Pair[string, int] {
		keys := KeysGen(minLen, maxLen).Draw(t, "keys")
		entries := make([]functional.Pair[string, int], len(keys))
		for i, k := range keys {
			entries[i] = functional.NewPair(k, rapid.Int().Draw(t, "value"))
		}
		return entries
	})
}

// NotEmptyMapGen generates a NotEmptyMap with up to maxLen entries.
func NotEmptyMapGen(maxLen int) *rapid.Generator[collection.NotEmptyMap[string, int]] {
	return rapid.Custom(func(t *rapid.T) collection.NotEmptyMap[string, int] {
		entries := EntriesGen(1, maxLen).Draw(t, "entries")
		return collection.NotEmptyMapOf(entries[0], entries[1:]...)
	})
}
