package menu

import "github.com/katalvlaran/bombe/alphabet"

// walker carries the state of one depth-first subgraph discovery.
type walker struct {
	links     *LinkGraph
	visits    *[alphabet.Size]int
	component []uint8
}

// visit enters letter through the edge at position from (NoLink for a root).
// A letter already entered only has its count raised; that revisit is the
// closure signature.
func (w *walker) visit(letter uint8, from int) {
	// 1. Count and stop on revisit
	w.visits[letter]++
	if w.visits[letter] > 1 {
		return
	}
	w.component = append(w.component, letter)

	// 2. Follow every edge except the one we came through
	var other uint8
	for other = 0; other < alphabet.Size; other++ {
		if other == letter {
			continue
		}
		if p, ok := w.links.Link(letter, other); ok && p != from {
			w.visit(other, p)
		}
	}
}

// components splits the link graph into connected components with at least
// two letters. Letters inside each component are in discovery order. The
// returned closures are Σ(visits−1)/2 over the component's letters.
func components(links *LinkGraph, visits *[alphabet.Size]int) (comps [][]uint8, closures []int) {
	var root uint8
	for root = 0; root < alphabet.Size; root++ {
		if visits[root] != 0 {
			continue
		}
		w := &walker{links: links, visits: visits}
		w.visit(root, NoLink)
		if len(w.component) < 2 {
			continue
		}

		extra := 0
		for _, c := range w.component {
			extra += visits[c] - 1
		}
		comps = append(comps, w.component)
		closures = append(closures, extra/2)
	}

	return comps, closures
}
