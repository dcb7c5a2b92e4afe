package menu

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/alphabet"
	"github.com/katalvlaran/bombe/crib"
)

// Build creates the menu for crib aligned at absolute position in ciphertext.
//
// Steps:
//  1. Check the alignment.
//  2. Extract links, earliest position wins.
//  3. Discover subgraphs and count closures.
//  4. Order each subgraph's edges and score it.
//  5. Score the menu as a whole and sort subgraphs, best first.
func Build(ciphertext, cribText []uint8, position int, opts ...Option) (*Menu, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Preconditions
	if len(cribText) == 0 {
		return nil, ErrEmptyCrib
	}
	if position < 0 || position >= len(ciphertext) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrPositionRange, position, len(ciphertext))
	}
	if position+len(cribText) > len(ciphertext) {
		return nil, fmt.Errorf("%w: %d+%d > %d", ErrCribTooLong, position, len(cribText), len(ciphertext))
	}
	if j := crib.Conflict(ciphertext, cribText, position); j != -1 {
		return nil, fmt.Errorf("%w: %c at position %d", ErrSelfEncipher, alphabet.Char(cribText[j]), position+j)
	}

	m := &Menu{
		Crib:     append([]uint8(nil), cribText...),
		Position: position,
		Length:   len(cribText),
	}

	// 2. Links
	buildLinks(&m.Links, ciphertext, cribText, position)

	// 3. Subgraphs
	comps, closures := components(&m.Links, &m.Visits)

	// 4. Per-subgraph ordering and score
	m.Subgraphs = make([]Subgraph, 0, len(comps))
	for i, letters := range comps {
		edges := collectEdges(&m.Links, letters)
		orderEdges(edges)
		m.Subgraphs = append(m.Subgraphs, Subgraph{
			Letters:  letters,
			Edges:    edges,
			Closures: closures[i],
			Score:    Score(closures[i], len(edges)),
		})
		m.TotalLinks += len(edges)
		m.TotalClosures += closures[i]
	}

	// 5. Aggregate score, best subgraph first
	m.Score = Score(m.TotalClosures, m.TotalLinks)
	sort.SliceStable(m.Subgraphs, func(a, b int) bool { return m.Subgraphs[a].Score < m.Subgraphs[b].Score })

	if ce := o.Logger.Check(zap.DebugLevel, "menu built"); ce != nil {
		ce.Write(
			zap.Int("position", m.Position),
			zap.String("crib", alphabet.String(m.Crib)),
			zap.Int("subgraphs", len(m.Subgraphs)),
			zap.Int("links", m.TotalLinks),
			zap.Int("closures", m.TotalClosures),
			zap.Float64("score", m.Score),
			zap.String("layout", m.String()),
		)
	}

	return m, nil
}
