package engine

import (
	"fmt"
	"strings"
)

// Declaration is a public, possibly partial disclosure of a Result. The
// comparison class is always announced; the tie-break payload is carried
// only when the opposing player forced full disclosure by answering
// "equal" at the class level.
type Declaration struct {
	Category Category
	First    int
	Detail   bool

	// Payload, populated only when Detail is set.
	Pips   int      // point
	Groups [][]Card // sequences and sets
}

// NewDeclaration discloses a result, in full when detail is set.
func NewDeclaration(r Result, detail bool) Declaration {
	d := Declaration{Category: r.Category, First: r.First, Detail: detail}
	if detail {
		d.Pips = r.Pips
		d.Groups = r.Groups
	}
	return d
}

// Judge compares a declaration announced by the opposing player against
// the hand's own evaluation of that category: Good when the hand's own
// combination ranks higher, NotGood when the announcement ranks higher.
// A detailed declaration is judged on its tie-break payload.
func Judge(h Hand, d Declaration) Goodness {
	mine := Evaluate(h, d.Category)
	var cmp int
	if !d.Detail {
		cmp = compareInts(mine.First, d.First)
	} else if d.Category == Point {
		cmp = compareInts(mine.Pips, d.Pips)
	} else {
		cmp = compareGroups(mine.Groups, d.Groups)
	}
	switch {
	case cmp > 0:
		return Good
	case cmp < 0:
		return NotGood
	default:
		return Equal
	}
}

// Traditional French score names, by run or set size.
var sequenceNames = map[int]string{
	3: "tierce",
	4: "quarte",
	5: "quinte",
	6: "sixième",
	7: "septième",
	8: "huitième",
}

var setNames = map[int]string{
	3: "trio",
	4: "quatorze",
}

// ScoreName renders the announcement's traditional name, e.g. "Point of
// 5", "quinte to the King", "quatorze of Aces". With detail, sequence
// names carry their top rank ("major" for runs topped by the Ace) and
// point names carry the pip sum.
func (d Declaration) ScoreName() string {
	names := d.scoreNames(false)
	return names[0]
}

// AllScoreNames renders every qualifying group's name, joined, for the
// winner announcement.
func (d Declaration) AllScoreNames() string {
	return strings.Join(d.scoreNames(true), ", ")
}

func (d Declaration) scoreNames(multiple bool) []string {
	if d.Category == Point {
		name := fmt.Sprintf("Point of %d", d.First)
		if d.Detail {
			name = fmt.Sprintf("%s making %d", name, d.Pips)
		}
		return []string{name}
	}

	groups := d.Groups
	if !d.Detail || len(groups) == 0 {
		// Undisclosed payload: name the class alone.
		return []string{d.className(d.First, nil)}
	}
	if !multiple {
		groups = groups[:1]
	}
	names := make([]string, 0, len(groups))
	for _, group := range groups {
		names = append(names, d.className(len(group), group))
	}
	return names
}

func (d Declaration) className(size int, group []Card) string {
	if d.Category == Sets {
		name := setNames[size]
		if group != nil {
			name = fmt.Sprintf("%s of %ss", name, group[0].Rank)
		}
		return name
	}
	name := sequenceNames[size]
	if group != nil {
		top := group[len(group)-1].Rank
		if top == Ace {
			name += " major"
		} else {
			name = fmt.Sprintf("%s to the %s", name, top)
		}
	}
	return name
}
