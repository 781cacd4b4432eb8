package prompts

import "fmt"

// Algorithm requests the implementation of one strategy description as a
// python function. When noise is configured, action flips are applied by the
// tournament engine and the algorithm must not implement them.
func Algorithm(strategy string, noise *float64) string {
	noiseStr := ""
	if noise != nil {
		noiseStr = "You do not need to implement the noise, as this is handled by the tournament implementation. "
	}

	return fmt.Sprintf(`Implement the following strategy description as an algorithm.

%s

The tournament uses the Axelrod python library. Your response should only include the python code for the strategy function, which has the following signature:

def strategy(self, opponent: axl.player.Player) -> axl.Action:

You may assume the following imports:

import axelrod as axl

Some attributes that you may wish to use are:
- self.history or opponent.history return a List[axl.Action] of the moves played so far.
- the histories have properties history.cooperations and history.defections which return a count of the total number of cooperate or defect actions played.
- self.score or opponent.score returns the score achieved so far.
- self._random is a numpy.random.RandomGenerator instance which you should use if you wish to utilise randomness.
- if you initialise custom attributes, use 'if not self.history' to determine if it is the first time the strategy function is called.

%sBegin your response by repeating the strategy function signature.
`, strategy, noiseStr)
}
