package menu

import (
	"sort"

	"github.com/katalvlaran/bombe/alphabet"
)

const unreached = -1

// collectEdges returns one edge per linked unordered pair inside letters, in
// ascending (lower, higher) letter order. The direction follows the link graph:
// (i, j) when links[i][j] is set, else (j, i).
func collectEdges(links *LinkGraph, letters []uint8) []Edge {
	var in [alphabet.Size]bool
	for _, c := range letters {
		in[c] = true
	}

	var edges []Edge
	var i, j uint8
	for i = 0; i < alphabet.Size; i++ {
		if !in[i] {
			continue
		}
		for j = i + 1; j < alphabet.Size; j++ {
			if !in[j] {
				continue
			}
			switch {
			case links[i][j] != NoLink:
				edges = append(edges, Edge{Pos: links[i][j], L1: i, L2: j})
			case links[j][i] != NoLink:
				edges = append(edges, Edge{Pos: links[j][i], L1: j, L2: i})
			}
		}
	}

	return edges
}

// orderEdges assigns breadth-first distances from the first edge's L1 and
// stably sorts the edges by them.
func orderEdges(edges []Edge) {
	if len(edges) == 0 {
		return
	}

	// 1. Adjacency over the component
	var adj [alphabet.Size][]uint8
	for _, e := range edges {
		adj[e.L1] = append(adj[e.L1], e.L2)
		adj[e.L2] = append(adj[e.L2], e.L1)
	}

	// 2. Breadth-first distances from the anchor
	var dist [alphabet.Size]int
	for i := range dist {
		dist[i] = unreached
	}
	anchor := edges[0].L1
	dist[anchor] = 0
	queue := make([]uint8, 0, alphabet.Size)
	queue = append(queue, anchor)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if dist[nb] == unreached {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}

	// 3. Edge distance is the nearer endpoint
	for i := range edges {
		d1, d2 := dist[edges[i].L1], dist[edges[i].L2]
		edges[i].Dist = min(d1, d2)
	}

	sort.SliceStable(edges, func(a, b int) bool { return edges[a].Dist < edges[b].Dist })
}
