package engine

import "sort"

// Scoring ladders, keyed by comparison class (suit length for point,
// run/group length for sequences and sets). The class values are the only
// achievable ladder tiers, 0 meaning void. The sequence ladder's jump
// from 4 to 15 is the authentic rule rewarding runs of five and longer.
var scoreLadders = [NumCategories]map[int]int{
	Point:     {0: 0, 4: 4, 5: 5, 6: 6, 7: 7, 8: 8},
	Sequences: {0: 0, 3: 3, 4: 4, 5: 15, 6: 16, 7: 17, 8: 18},
	Sets:      {0: 0, 3: 3, 4: 14},
}

// ladderValue returns the point award for one qualifying class.
func ladderValue(cat Category, class int) int { return scoreLadders[cat][class] }

// ladderStrength normalizes how far above the minimum qualifying
// threshold a class sits: the share of ladder tiers strictly below it.
func ladderStrength(cat Category, class int) float64 {
	below := 0
	for tier := range scoreLadders[cat] {
		if tier < class {
			below++
		}
	}
	if below == 0 {
		return 0
	}
	return float64(below) / float64(len(scoreLadders[cat])-1)
}

// Result is the outcome of evaluating one combination category for one
// hand. First is the comparison class; the tie-break payload is Pips for
// point and Groups for the group categories. Results of one category are
// totally ordered by (First, payload).
type Result struct {
	Category Category
	First    int
	Pips     int      // point tie-break: pip sum of the point suit
	Groups   [][]Card // qualifying runs/sets, ordered (-length, -top rank)
	Value    int
	Strength float64

	// PointSuit holds the specific winning suit cards for Point only.
	PointSuit []Card
}

// Compare orders two results of the same category: -1, 0 or +1 as r is
// weaker than, equal to, or stronger than o.
func (r Result) Compare(o Result) int {
	if r.First != o.First {
		if r.First < o.First {
			return -1
		}
		return 1
	}
	if r.Category == Point {
		return compareInts(r.Pips, o.Pips)
	}
	return compareGroups(r.Groups, o.Groups)
}

// Contains reports whether the exact card participates in the result's
// qualifying group(s). Void results contain nothing.
func (r Result) Contains(c Card) bool {
	if r.Value == 0 {
		return false
	}
	if r.Category == Point {
		for _, p := range r.PointSuit {
			if p == c {
				return true
			}
		}
		return false
	}
	for _, group := range r.Groups {
		for _, g := range group {
			if g == c {
				return true
			}
		}
	}
	return false
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareCards orders card lists lexicographically by rank alone.
func compareCards(a, b []Card) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInts(int(a[i].Rank), int(b[i].Rank)); c != 0 {
			return c
		}
	}
	return compareInts(len(a), len(b))
}

// compareGroups orders group lists lexicographically, element-wise.
func compareGroups(a, b [][]Card) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareCards(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(a), len(b))
}

// newResult fills in Value and Strength from the ladder.
func newResult(cat Category, first int, pips int, groups [][]Card, pointSuit []Card) Result {
	r := Result{Category: cat, First: first, Pips: pips, Groups: groups, PointSuit: pointSuit}
	if cat == Point {
		r.Value = ladderValue(cat, first)
	} else {
		for _, group := range groups {
			r.Value += ladderValue(cat, len(group))
		}
	}
	r.Strength = ladderStrength(cat, first)
	return r
}

// Evaluate dispatches to the pure evaluator for the given category. All
// three evaluators may be re-invoked at any time without mutating the
// hand.
func Evaluate(h Hand, cat Category) Result {
	switch cat {
	case Point:
		return EvaluatePoint(h)
	case Sequences:
		return EvaluateSequences(h)
	default:
		return EvaluateSets(h)
	}
}

// EvaluatePoint finds the best point suit: the longest suit of four or
// more cards, ties broken by highest pip sum. First is the suit length,
// Pips the pip sum.
func EvaluatePoint(h Hand) Result {
	groups := h.Suits()
	longest := groups[len(groups)-1]
	if len(longest) < 4 {
		return newResult(Point, 0, 0, nil, nil)
	}

	var best []Card
	bestPips := -1
	for _, group := range groups {
		if len(group) != len(longest) {
			continue
		}
		pips := 0
		for _, c := range group {
			pips += c.Rank.Pip()
		}
		if pips > bestPips {
			best, bestPips = group, pips
		}
	}
	return newResult(Point, len(best), bestPips, nil, best)
}

// EvaluateSequences finds, per suit, the single longest run of
// consecutive ranks, keeps runs of three or more, and orders the
// qualifying runs by descending length then descending top rank. First
// is the longest qualifying length, 0 when none qualify.
func EvaluateSequences(h Hand) Result {
	var runs [][]Card
	for _, group := range h.Suits() {
		run := longestRun(group)
		if len(run) >= 3 {
			runs = append(runs, run)
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a[len(a)-1].Rank > b[len(b)-1].Rank
	})
	first := 0
	if len(runs) > 0 {
		first = len(runs[0])
	}
	return newResult(Sequences, first, 0, runs, nil)
}

// longestRun returns the longest chain of rank-consecutive cards in a
// suit group already sorted ascending. Equal lengths keep the earliest
// (lowest-starting) run.
func longestRun(group []Card) []Card {
	var longest []Card
	start := 0
	for start < len(group) {
		end := start + 1
		for end < len(group) && group[end].Rank-group[end-1].Rank == 1 {
			end++
		}
		if end-start > len(longest) {
			longest = group[start:end]
		}
		start = end
	}
	return longest
}

// setRanks are the only ranks eligible for sets, highest first so that
// equal-sized groups order by descending rank.
var setRanks = [5]Rank{Ace, King, Queen, Jack, Ten}

// EvaluateSets collects, for each eligible rank (Ten and above), the held
// cards of that rank, keeping groups of three or four. First is the
// largest qualifying group size.
func EvaluateSets(h Hand) Result {
	var sets [][]Card
	for _, r := range setRanks {
		var group []Card
		for s := Suit(0); s < NumSuits; s++ {
			c := Card{Rank: r, Suit: s}
			if h.Has(c) {
				group = append(group, c)
			}
		}
		if len(group) >= 3 {
			sets = append(sets, group)
		}
	}
	sort.SliceStable(sets, func(i, j int) bool { return len(sets[i]) > len(sets[j]) })
	first := 0
	if len(sets) > 0 {
		first = len(sets[0])
	}
	return newResult(Sets, first, 0, sets, nil)
}

// CarteBlanche reports whether the hand holds no court card. It is
// checked once, on the freshly dealt hand, before any exchange.
func CarteBlanche(h Hand) bool {
	for _, c := range h {
		if c.Rank.IsCourt() {
			return false
		}
	}
	return true
}
