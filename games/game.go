package games

import (
	"fmt"
	"sort"
	"strings"
)

// Game is a symmetric 2x2 normal-form game, identified by name.
// R is the reward for mutual cooperation, P the punishment for mutual
// defection, S the sucker payoff, T the temptation payoff.
type Game struct {
	Name string
	R    float64
	P    float64
	S    float64
	T    float64
}

func (g Game) RPST() (r, p, s, t float64) {
	return g.R, g.P, g.S, g.T
}

var named = map[string]Game{
	"prisoners_dilemma": {
		Name: "prisoners_dilemma",
		R:    3, P: 1, S: 0, T: 5,
	},
	"chicken": {
		Name: "chicken",
		R:    3, P: 0, S: 1, T: 4,
	},
	"stag_hunt": {
		Name: "stag_hunt",
		R:    5, P: 2, S: 0, T: 4,
	},
}

func Get(name string) (Game, error) {
	game, ok := named[strings.ToLower(name)]
	if !ok {
		return Game{}, fmt.Errorf("unknown game: %q (known: %s)",
			name, strings.Join(Names(), ", "))
	}
	return game, nil
}

func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
