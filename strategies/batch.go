package strategies

import "github.com/reusee/stratgen/games"

// Batch identifies one generation unit: index n produces one strategy per
// attitude for the given game parameters.
type Batch struct {
	Index       int
	Game        games.Game
	Rounds      int
	Noise       *float64
	Temperature *float32
}

// Unit is a validated, normalized strategy ready for emission. Immutable
// once created.
type Unit struct {
	Index       int
	Attitude    Attitude
	Description string
	Algorithm   string // normalized, validated, indented for the class body
	Game        games.Game
	Rounds      int
	Noise       *float64
}
