package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/cmds"
	"github.com/reusee/stratgen/debugs"
	"github.com/reusee/stratgen/games"
	"github.com/reusee/stratgen/generators"
	"github.com/reusee/stratgen/logs"
	"github.com/reusee/stratgen/modes"
	"github.com/reusee/stratgen/outputs"
	"github.com/reusee/stratgen/strategies"
	"github.com/reusee/stratgen/vars"
)

var (
	llmName     = cmds.Var[string]("-llm")
	targetCount = cmds.Var[int]("-n")
	temperature = cmds.Var[float64]("-temp")
	gameName    = cmds.Var[string]("-game")
	roundsArg   = cmds.Var[int]("-rounds")
	noiseArg    = cmds.Var[*float64]("-noise")
	outputPath  = cmds.Var[string]("-output")
	resume      = cmds.Switch("-resume")
	tapBatches  = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		getGenerator generators.GetGenerator,
		generateBatch strategies.GenerateBatch,
		tap debugs.Tap,
	) {

		if *llmName == "" {
			fmt.Fprintln(os.Stderr, "-llm is required (openai or anthropic)")
			os.Exit(-1)
		}
		if *targetCount <= 0 {
			fmt.Fprintln(os.Stderr, "-n is required and must be positive")
			os.Exit(-1)
		}
		if *temperature < 0 || *temperature > 1 {
			fmt.Fprintln(os.Stderr, "-temp must be in [0, 1]")
			os.Exit(-1)
		}
		if *noiseArg != nil && (**noiseArg < 0 || **noiseArg > 1) {
			fmt.Fprintln(os.Stderr, "-noise must be in [0, 1]")
			os.Exit(-1)
		}

		generator, err := getGenerator(*llmName)
		ce(err)

		game, err := games.Get(vars.FirstNonZero(*gameName, "prisoners_dilemma"))
		ce(err)

		rounds := *roundsArg
		if rounds == 0 {
			rounds = 20
		}

		artifact := outputs.NewArtifact(vars.FirstNonZero(*outputPath, "output.py"))

		done := map[int]bool{}
		if *resume {
			done, err = artifact.DoneIndices()
			ce(err)
		} else {
			ce(artifact.Init())
		}
		remaining := outputs.Remaining(done, *targetCount)

		logger.Info("starting",
			"llm", *llmName,
			"model", generator.Args().Model,
			"game", game.Name,
			"rounds", rounds,
			"remaining", len(remaining),
		)

		ce(artifact.OpenAppend())
		defer func() {
			ce(artifact.Close())
		}()

		temp := float32(*temperature)
		for _, n := range remaining {
			batch := strategies.Batch{
				Index:       n,
				Game:        game,
				Rounds:      rounds,
				Noise:       *noiseArg,
				Temperature: &temp,
			}

			units, err := generateBatch(ctx, generator, batch)
			ce(err)

			for _, unit := range units {
				ce(artifact.AppendUnit(unit))
			}
			ce(artifact.Sync())

			logger.Info("batch done",
				"index", n,
			)

			if *tapBatches {
				tap(ctx, "batch", map[string]any{
					"batch": batch,
					"units": units,
				})
			}
		}

	})

}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
