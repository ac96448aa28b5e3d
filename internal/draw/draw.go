package draw

import (
	"crypto/rand"
	"math/big"
)

// Denominations is the fixed ordered set of drawable amounts. The unit is
// symbolic; no real money moves.
var Denominations = []int{100, 200, 300, 500, 1000}

// Draw selects one denomination uniformly at random. Each call is
// independent of prior draws; the set is non-empty by construction, so
// Draw cannot fail.
func Draw() int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(Denominations))))
	return Denominations[n.Int64()]
}
