package menu

// buildLinks fills g from the crib aligned at position pos. Positions in g are
// absolute ciphertext positions.
func buildLinks(g *LinkGraph, ciphertext, crib []uint8, pos int) {
	for a := range g {
		for b := range g[a] {
			g[a][b] = NoLink
		}
	}
	for j, p := range crib {
		c := ciphertext[pos+j]
		if g[c][p] == NoLink {
			g[c][p] = pos + j
		}
	}
}
