package latex

import (
	"strings"
	"unicode/utf8"
)

// shapeDivisor scales the node-count difference so that size drift weighs
// less than a missing or extra token.
const shapeDivisor = 8

// volumeFloor is the prose length, in code points, below which the text
// volume of two trees is not compared.
const volumeFloor = 32

// Distance scores how far candidate strays structurally from reference.
// It is zero for identical trees and grows with every missing or extra
// command, label or reference, every difference in the number of groups,
// inline and display maths, with the difference in total node count and
// with a gross mismatch in the amount of prose.
// It is a ranking heuristic, not a metric.
func Distance(reference, candidate Node) int {
	d := 0

	ref, cand := Vocabulary(reference), Vocabulary(candidate)
	for tok, n := range ref {
		d += abs(n - cand[tok])
	}
	for tok, n := range cand {
		if _, ok := ref[tok]; !ok {
			d += n
		}
	}

	refShape, candShape := shape(reference), shape(candidate)
	for i := range refShape {
		d += abs(refShape[i] - candShape[i])
	}

	d += abs(reference.Count()-candidate.Count()) / shapeDivisor
	d += volume(reference, candidate)
	return d
}

// volume compares the amount of prose in both trees. It is zero while the
// longer text is under volumeFloor or less than twice the shorter one, grows
// by one per extra multiple beyond that, and equals the longer length when
// one side has no prose at all.
func volume(reference, candidate Node) int {
	r := utf8.RuneCountInString(strings.TrimSpace(PlainText(reference)))
	c := utf8.RuneCountInString(strings.TrimSpace(PlainText(candidate)))
	lo, hi := min(r, c), max(r, c)
	if hi < volumeFloor {
		return 0
	}
	if lo == 0 {
		return hi
	}
	return hi/lo - 1
}

// shape counts groups, maths and display maths below the root.
func shape(n Node) [3]int {
	var s [3]int
	for _, c := range n.Children {
		walk(c, func(x Node) {
			switch x.Kind {
			case GroupKind:
				s[0]++
			case MathKind:
				s[1]++
			case DisplayMathKind:
				s[2]++
			}
		})
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
