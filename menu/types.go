package menu

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/bombe/alphabet"
)

// NoLink marks an absent entry in a LinkGraph.
const NoLink = -1

var (
	// ErrEmptyCrib is returned when the crib has no letters.
	ErrEmptyCrib = errors.New("menu: empty crib")

	// ErrPositionRange is returned when the alignment lies outside the ciphertext.
	ErrPositionRange = errors.New("menu: position out of range")

	// ErrCribTooLong is returned when position+len(crib) exceeds the ciphertext.
	ErrCribTooLong = errors.New("menu: crib runs past the ciphertext")

	// ErrSelfEncipher is returned when a crib letter sits under the same
	// ciphertext letter, which Enigma cannot produce.
	ErrSelfEncipher = errors.New("menu: crib letter enciphers to itself")
)

// LinkGraph holds, for ciphertext letter a and crib letter b, the earliest
// absolute position at which they face each other, or NoLink.
type LinkGraph [alphabet.Size][alphabet.Size]int

// Link returns the position joining a and b in either direction. links[min][max]
// is preferred over links[max][min] so that every unordered pair maps to
// exactly one edge.
func (g *LinkGraph) Link(a, b uint8) (int, bool) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if p := g[lo][hi]; p != NoLink {
		return p, true
	}
	if p := g[hi][lo]; p != NoLink {
		return p, true
	}

	return NoLink, false
}

// Edge is one link of a subgraph: at absolute position Pos the scrambler
// exchanges the steckered images of L1 and L2. Dist is the breadth-first
// distance of the edge from the subgraph's anchor letter.
type Edge struct {
	Pos    int
	L1, L2 uint8
	Dist   int
}

// Subgraph is one connected component of the link graph with at least two
// letters, its edges in stop-test order.
type Subgraph struct {
	Letters  []uint8
	Edges    []Edge
	Closures int
	Score    float64
}

// Anchor is the letter whose stecker partner the stop test guesses first.
func (s *Subgraph) Anchor() uint8 { return s.Edges[0].L1 }

// Menu is the complete Bombe menu for one crib alignment.
type Menu struct {
	Crib     []uint8
	Position int
	Length   int

	Links  LinkGraph
	Visits [alphabet.Size]int

	Subgraphs     []Subgraph
	TotalLinks    int
	TotalClosures int
	Score         float64
}

// End returns the first position after the crib.
func (m *Menu) End() int { return m.Position + m.Length }

// String renders the menu one subgraph per block, most discriminating first.
func (m *Menu) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Menu at %d (%s): links %d, closures %d, score %.3f\n",
		m.Position, alphabet.String(m.Crib), m.TotalLinks, m.TotalClosures, m.Score)
	for i := range m.Subgraphs {
		s := &m.Subgraphs[i]
		fmt.Fprintf(&sb, "  subgraph %d: letters %s, links %d, closures %d, score %.3f\n",
			i, alphabet.String(s.Letters), len(s.Edges), s.Closures, s.Score)
		for _, e := range s.Edges {
			fmt.Fprintf(&sb, "    %4d %c-%c dist %d\n", e.Pos, alphabet.Char(e.L1), alphabet.Char(e.L2), e.Dist)
		}
	}

	return sb.String()
}

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Logger receives the menu structure at debug level. Default zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
