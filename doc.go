// Package bombe is a software Turing-Welchman Bombe: it recovers Enigma keys
// from a ciphertext and a crib (a guessed stretch of plaintext).
//
// What is inside?
//
//	alphabet/  letters ↔ indices 0..25
//	enigma/    H, M3 and M4 machines: keys, stepping, scrambler lookup tables
//	stecker/   plugboards and the partial plugboard a stop test builds
//	crib/      crib alignment checks and position ranges
//	menu/      the letter graph of a crib: subgraphs, closures, edge order, score
//	bombe/     the stop test: one key, one menu, consistent plugboard or not
//	search/    key ranges, menu planning and the parallel search driver
//	metrics/   Prometheus counters for a running search
//	config/    .bombe.yaml / BOMBE_* settings
//	cmd/bombe  the command-line front end
//
// A typical flow:
//
//	menus, _ := search.PlanMenus(ct, crib, crib.Range{Min: 0, Max: 10}, search.DefaultMaxMenuScore)
//	kr, _ := search.ParseRange("B:111:AAA:AAA", "B:555:ZZZ:ZZZ", enigma.ModelM3)
//	s, _ := search.New(search.WithWorkers(8))
//	sum, err := s.Run(ctx, ct, menus, kr, func(st search.Stop) error {
//		fmt.Println(st.Key, st.Stecker)
//		return nil
//	})
//
// Every stop is a candidate only: the partial plugboard it carries still has
// to be checked against the rest of the message.
package bombe
