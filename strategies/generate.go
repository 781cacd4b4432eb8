package strategies

import (
	"context"

	"github.com/reusee/stratgen/checks"
	"github.com/reusee/stratgen/cleanups"
	"github.com/reusee/stratgen/generators"
	"github.com/reusee/stratgen/logs"
	"github.com/reusee/stratgen/prompts"
	"github.com/reusee/stratgen/vars"
)

// GenerateDescriptions runs the description phase of one batch: a chained
// three-turn conversation requesting one strategy per attitude, in a random
// order established once per batch. The accumulated context lets the model
// avoid near-duplicate strategies. The returned map has exactly one entry
// per attitude regardless of the request order.
type GenerateDescriptions func(
	ctx context.Context,
	generator generators.Generator,
	batch Batch,
) (map[Attitude]string, error)

func (Module) GenerateDescriptions(
	logger logs.Logger,
) GenerateDescriptions {
	return func(
		ctx context.Context,
		generator generators.Generator,
		batch Batch,
	) (_ map[Attitude]string, err error) {

		task := prompts.Task(batch.Game, batch.Rounds, batch.Noise)
		order := Shuffled()
		descriptions := make(map[Attitude]string, len(order))

		options := &generators.GenerateOptions{
			Temperature: batch.Temperature,
		}

		var state generators.State = generators.NewPrompts(
			prompts.SystemStrategist,
			nil,
		)

		for i, attitude := range order {
			var request string
			if i == 0 {
				request = task + "\n\n" + prompts.Strategies() + "\n\n" + prompts.First(attitude.Lower())
			} else {
				request = prompts.Next(attitude.Lower())
			}

			state, err = state.AppendContent(&generators.Content{
				Role: generators.RoleUser,
				Parts: []generators.Part{
					generators.Text(request),
				},
			})
			if err != nil {
				return nil, err
			}

			state, err = generator.Generate(ctx, state, options)
			if err != nil {
				return nil, err
			}

			descriptions[attitude] = generators.LastText(state)
			logger.InfoContext(ctx, "described",
				"index", batch.Index,
				"attitude", attitude,
			)
		}

		return descriptions, nil
	}
}

// GenerateAlgorithm runs the implementation phase for one description: a
// single-turn conversation, no shared state with the other attitudes, at
// temperature zero to favor syntactic correctness over variation. The raw
// response is normalized, gated by the whitelist check, then indented for
// the class body.
type GenerateAlgorithm func(
	ctx context.Context,
	generator generators.Generator,
	batch Batch,
	description string,
) (string, error)

func (Module) GenerateAlgorithm(
	logger logs.Logger,
) GenerateAlgorithm {
	return func(
		ctx context.Context,
		generator generators.Generator,
		batch Batch,
		description string,
	) (string, error) {

		request := prompts.Task(batch.Game, batch.Rounds, batch.Noise) +
			"\n\n" + prompts.Algorithm(description, batch.Noise)

		var state generators.State = generators.NewPrompts(
			prompts.SystemProgrammer,
			[]*generators.Content{
				{
					Role: generators.RoleUser,
					Parts: []generators.Part{
						generators.Text(request),
					},
				},
			},
		)

		state, err := generator.Generate(ctx, state, &generators.GenerateOptions{
			Temperature: vars.PtrTo(float32(0)),
		})
		if err != nil {
			return "", err
		}

		algorithm := cleanups.Normalize(generators.LastText(state))

		if err := checks.Check(ctx, algorithm); err != nil {
			return "", err
		}

		return cleanups.Indent(algorithm), nil
	}
}

// GenerateBatch produces the three validated units of one batch index.
// Any failure aborts the whole index: no partial result is returned.
type GenerateBatch func(
	ctx context.Context,
	generator generators.Generator,
	batch Batch,
) ([]Unit, error)

func (Module) GenerateBatch(
	generateDescriptions GenerateDescriptions,
	generateAlgorithm GenerateAlgorithm,
	newSpan logs.NewSpan,
	logger logs.Logger,
) GenerateBatch {
	return func(
		ctx context.Context,
		generator generators.Generator,
		batch Batch,
	) ([]Unit, error) {

		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "generate batch",
			"index", batch.Index,
		)

		descriptions, err := generateDescriptions(ctx, generator, batch)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}

		units := make([]Unit, 0, len(descriptions))
		for _, attitude := range All() {
			algorithm, err := generateAlgorithm(ctx, generator, batch, descriptions[attitude])
			if err != nil {
				return nil, logs.WrapSpan(ctx, err)
			}
			units = append(units, Unit{
				Index:       batch.Index,
				Attitude:    attitude,
				Description: descriptions[attitude],
				Algorithm:   algorithm,
				Game:        batch.Game,
				Rounds:      batch.Rounds,
				Noise:       batch.Noise,
			})
		}

		return units, nil
	}
}
