package logic

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/maps"
)

// Implicant is a product term over the variable set: one byte per variable,
// '0' for the negated literal, '1' for the plain literal, '-' for absent.
// Covers holds every minterm row the pattern spans.
type Implicant struct {
	Pattern string
	Covers  mapset.Set[int]
}

// mintermPattern renders row as an n-bit binary pattern, first variable most
// significant.
func mintermPattern(row, n int) string {
	var b strings.Builder
	b.Grow(n)
	for j := n - 1; j >= 0; j-- {
		b.WriteByte('0' + byte(row>>j&1))
	}
	return b.String()
}

// mergePatterns combines two implicant patterns that agree everywhere except
// a single position holding a literal bit in both. The differing position
// becomes a don't-care; a '-' never pairs with a literal.
func mergePatterns(a, b string) (string, bool) {
	if len(a) != len(b) {
		return "", false
	}
	diff := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if diff >= 0 || a[i] == '-' || b[i] == '-' {
			return "", false
		}
		diff = i
	}
	if diff < 0 {
		return "", false
	}
	return a[:diff] + "-" + a[diff+1:], true
}

// primeImplicants runs the Quine-McCluskey merge phase to a fixpoint. Each
// round groups the current implicants by their count of '1' literals and
// merges every eligible pair from adjacent groups; the merged coverage is the
// union of both operands and both operands are consumed. Implicants no round
// can consume are the prime implicants, returned in pattern order.
func primeImplicants(minterms []int, n int) []Implicant {
	current := make([]Implicant, 0, len(minterms))
	coverage := make(map[string]mapset.Set[int], len(minterms))
	for _, m := range minterms {
		p := mintermPattern(m, n)
		coverage[p] = mapset.NewThreadUnsafeSet(m)
		current = append(current, Implicant{Pattern: p, Covers: coverage[p]})
	}

	for {
		groups := make(map[int][]Implicant)
		for _, imp := range current {
			ones := strings.Count(imp.Pattern, "1")
			groups[ones] = append(groups[ones], imp)
		}
		counts := maps.Keys(groups)
		sort.Ints(counts)

		consumed := make(map[string]bool)
		next := current[:0:0]
		merged := false
		for _, k := range counts {
			if k == 0 {
				continue
			}
			for _, hi := range groups[k] {
				for _, lo := range groups[k-1] {
					p, ok := mergePatterns(hi.Pattern, lo.Pattern)
					if !ok {
						continue
					}
					if _, dup := coverage[p]; !dup {
						coverage[p] = hi.Covers.Union(lo.Covers)
						next = append(next, Implicant{Pattern: p, Covers: coverage[p]})
					}
					consumed[hi.Pattern] = true
					consumed[lo.Pattern] = true
					merged = true
				}
			}
		}
		for _, imp := range current {
			if !consumed[imp.Pattern] {
				next = append(next, imp)
			}
		}
		current = next
		if !merged {
			break
		}
	}

	sort.Slice(current, func(i, j int) bool {
		return current[i].Pattern < current[j].Pattern
	})
	return current
}

// selectCover greedily picks prime implicants until every minterm is covered.
// Each round targets the uncovered minterm covered by the fewest prime
// implicants (lowest row on ties), then takes the covering implicant whose
// live coverage is largest (lexicographically smallest pattern on ties) and
// removes everything it covers from the remaining coverage sets.
//
// This is a heuristic: with several equally good implicants the cover can be
// slightly non-minimal. Exact minimum cover (Petrick's method) is out of
// scope.
func selectCover(primes []Implicant, minterms []int) []Implicant {
	if len(primes) == 0 {
		return nil
	}

	// Work on clones so selection never mutates the prime implicants.
	live := make([]mapset.Set[int], len(primes))
	for i, p := range primes {
		live[i] = p.Covers.Clone()
	}
	coveredBy := make(map[int][]int, len(minterms))
	for i, p := range primes {
		p.Covers.Each(func(m int) bool {
			coveredBy[m] = append(coveredBy[m], i)
			return false
		})
	}

	covered := mapset.NewThreadUnsafeSet[int]()
	selected := make([]bool, len(primes))
	var cover []Implicant
	for covered.Cardinality() < len(minterms) {
		target := -1
		for _, m := range minterms {
			if covered.Contains(m) {
				continue
			}
			if target < 0 || len(coveredBy[m]) < len(coveredBy[target]) {
				target = m
			}
		}
		if target < 0 {
			break
		}

		best := -1
		for _, i := range coveredBy[target] {
			if selected[i] {
				continue
			}
			if best < 0 || live[i].Cardinality() > live[best].Cardinality() ||
				(live[i].Cardinality() == live[best].Cardinality() &&
					primes[i].Pattern < primes[best].Pattern) {
				best = i
			}
		}
		if best < 0 {
			break
		}

		selected[best] = true
		cover = append(cover, primes[best])
		live[best].Each(func(m int) bool {
			covered.Add(m)
			return false
		})
		for i := range live {
			if i != best {
				live[i] = live[i].Difference(live[best])
			}
		}
		live[best] = mapset.NewThreadUnsafeSet[int]()
	}
	return cover
}
