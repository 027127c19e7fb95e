package relation

import "fmt"

// Pair is the order-independent identity of an edge's endpoints. Every
// comparison of two person ids as a relation goes through Normalize so that
// (x, y) and (y, x) always land on the same key.
type Pair struct {
	Low  int64
	High int64
}

func Normalize(a, b int64) Pair {
	if a > b {
		return Pair{Low: b, High: a}
	}
	return Pair{Low: a, High: b}
}

func (p Pair) Contains(personID int64) bool {
	return p.Low == personID || p.High == personID
}

// Degenerate reports whether both endpoints are the same person.
func (p Pair) Degenerate() bool {
	return p.Low == p.High
}

func (p Pair) String() string {
	return fmt.Sprintf("{%d,%d}", p.Low, p.High)
}
