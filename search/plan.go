package search

import (
	"fmt"

	"github.com/katalvlaran/bombe/crib"
	"github.com/katalvlaran/bombe/menu"
)

// DefaultMaxMenuScore is the Turing score under which a menu is kept.
const DefaultMaxMenuScore = 1.0

// PlanMenus builds a menu for every valid alignment of cribText inside
// positions and keeps those scoring below maxScore. When positions names a
// single alignment its menu is kept whatever the score.
func PlanMenus(ciphertext, cribText []uint8, positions crib.Range, maxScore float64, opts ...menu.Option) ([]*menu.Menu, error) {
	var menus []*menu.Menu
	for _, pos := range crib.ValidPositions(ciphertext, cribText, positions) {
		m, err := menu.Build(ciphertext, cribText, pos, opts...)
		if err != nil {
			return nil, err
		}
		if m.Score < maxScore || positions.Single() {
			menus = append(menus, m)
		}
	}
	if len(menus) == 0 {
		return nil, fmt.Errorf("%w: positions %s, max score %.3f", ErrNoMenus, positions, maxScore)
	}

	return menus, nil
}
