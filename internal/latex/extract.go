package latex

import "sort"

// Commands returns the distinct command tokens of the subtree, sorted.
func Commands(n Node) []string { return collect(n, CommandKind) }

// Labels returns the distinct \label{...} tokens of the subtree, sorted.
func Labels(n Node) []string { return collect(n, LabelKind) }

// References returns the distinct \ref{...} tokens of the subtree, sorted.
func References(n Node) []string { return collect(n, ReferenceKind) }

func collect(n Node, kind Kind) []string {
	var out []string
	walk(n, func(c Node) {
		if c.Kind == kind {
			out = append(out, c.Data)
		}
	})
	sort.Strings(out)
	return dedup(out)
}

// dedup removes adjacent duplicates from a sorted slice in place.
func dedup(s []string) []string {
	if len(s) < 2 {
		return s
	}
	j := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[j-1] {
			s[j] = s[i]
			j++
		}
	}
	return s[:j]
}

// Vocabulary counts every command, label and reference token of the
// subtree, keeping repeats.
func Vocabulary(n Node) map[string]int {
	counts := make(map[string]int)
	walk(n, func(c Node) {
		switch c.Kind {
		case CommandKind, LabelKind, ReferenceKind:
			counts[c.Data]++
		}
	})
	return counts
}

// walk visits n and its descendants depth-first in source order.
func walk(n Node, visit func(Node)) {
	visit(n)
	for _, c := range n.Children {
		walk(c, visit)
	}
}
