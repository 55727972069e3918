// SPDX-License-Identifier: Unlicense OR MIT

package shape

import (
	lru "github.com/hashicorp/golang-lru/v2"

	fnt "strata.org/font"
	"strata.org/text"
)

// cacheSize bounds the number of layouts and the number of paths
// kept by a Cache.
const cacheSize = 1000

// layoutKey is the lookup a control issues for a text layout. The
// typeface is resolved first so that the default typeface shares
// entries with its explicit name.
type layoutKey struct {
	font fnt.Font
	size float32
	str  string
	opts text.LayoutOptions
}

// pathKey identifies the outline of one laid out line.
type pathKey struct {
	font fnt.Font
	size float32
	str  string
}

func newLRU[K comparable, V any]() *lru.Cache[K, V] {
	c, err := lru.New[K, V](cacheSize)
	if err != nil {
		// Only non-positive sizes are rejected.
		panic(err)
	}
	return c
}
