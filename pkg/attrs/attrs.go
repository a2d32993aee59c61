// Package attrs computes shared attribute sets for the catalog hoist.
package attrs

import (
	"github.com/arthur-debert/pricat/pkg/types"
)

// Intersect returns the key/value pairs present, with an identical value, in
// every set. A key whose values differ between sets is dropped entirely.
// The result follows the order of the first set; no sets yield an empty set.
func Intersect(sets []*types.Attributes) *types.Attributes {
	common := types.NewAttributes()
	if len(sets) == 0 || sets[0] == nil {
		return common
	}

	for pair := sets[0].Oldest(); pair != nil; pair = pair.Next() {
		if sharedByAll(sets[1:], pair.Key, pair.Value) {
			common.Set(pair.Key, pair.Value)
		}
	}
	return common
}

func sharedByAll(sets []*types.Attributes, key, value string) bool {
	for _, set := range sets {
		if set == nil {
			return false
		}
		if v, ok := set.Get(key); !ok || v != value {
			return false
		}
	}
	return true
}

// RemoveKeys deletes from target every key present in keysFrom. Keys missing
// from target are ignored.
func RemoveKeys(target, keysFrom *types.Attributes) {
	if target == nil || keysFrom == nil {
		return
	}
	for pair := keysFrom.Oldest(); pair != nil; pair = pair.Next() {
		target.Delete(pair.Key)
	}
}
