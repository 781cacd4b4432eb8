package prompts

import (
	"fmt"
	"strconv"

	"github.com/reusee/stratgen/games"
)

const SystemStrategist = "You are an AI assistant with expertise in game theory. Your task is to create strategies to maximise your score in an iterated normal-form game tournament, taking into account the payoffs."

const SystemProgrammer = "You are an AI assistant with expertise in game theory and programming. Your task is to implement the strategy description provided by the user as an algorithm. You only include python code in your response."

// Task describes the payoff matrix, match length and noise of the game the
// generated strategy will play.
func Task(game games.Game, rounds int, noise *float64) string {
	r, p, s, t := game.RPST()

	noiseStr := ""
	if noise != nil {
		noiseStr = fmt.Sprintf(" Matches have noisy actions: independently for both players, there is a %.0f%% chance that their chosen action is flipped.", *noise*100)
	}

	return fmt.Sprintf(`Your task is to write a strategy to play an iterated normal-form game with the following payoff matrix:

|   | C   | D   |
| C | %[1]s,%[1]s | %[3]s,%[4]s |
| D | %[4]s,%[3]s | %[2]s,%[2]s |

If you play C and your opponent plays C, you both score %[1]s.
If you play C and your opponent plays D, you score %[3]s and they score %[4]s.
If you play D and your opponent plays C, you score %[4]s and they score %[3]s.
If you play D and your opponent plays D, you both score %[2]s.

Each match lasts %[5]d rounds.%[6]s`,
		payoff(r), payoff(p), payoff(s), payoff(t),
		rounds, noiseStr,
	)
}

func Strategies() string {
	return "Please create three strategies: one that behaves aggressively, one that behaves cooperatively, and one that is neutral. Write the strategy descriptions in natural language only."
}

// First requests the initial strategy description of the conversation.
// attitude is the lower-cased attitude label.
func First(attitude string) string {
	return fmt.Sprintf("First, write the %s strategy.", attitude)
}

// Next requests a follow-up strategy description, building on the
// assistant responses already in the conversation.
func Next(attitude string) string {
	return fmt.Sprintf("Now, write the %s strategy", attitude)
}

func payoff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
