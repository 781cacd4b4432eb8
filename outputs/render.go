package outputs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/reusee/stratgen/strategies"
)

const commentWidth = 78

// Render turns a unit into its persisted form: the description word-wrapped
// as a block comment, a class declaration binding the generation metadata,
// and the algorithm body under the score bookkeeping decorator supplied by
// the collaborator framework.
func Render(unit strategies.Unit) string {
	return fmt.Sprintf(`%s

class %s_%d(LLM_Strategy):
  n = %d
  attitude = Attitude.%s
  game = '%s'
  rounds = %d
  noise = %s

  @auto_update_score
%s`,
		formatComment(unit.Description),
		unit.Attitude, unit.Index,
		unit.Index,
		unit.Attitude.Upper(),
		unit.Game.Name,
		unit.Rounds,
		pyNoise(unit.Noise),
		unit.Algorithm,
	)
}

func formatComment(text string) string {
	wrapped := wordwrap.WrapString(text, commentWidth)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}

func pyNoise(noise *float64) string {
	if noise == nil {
		return "None"
	}
	return strconv.FormatFloat(*noise, 'g', -1, 64)
}
