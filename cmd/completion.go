package cmd

import (
	"github.com/etnz/compound"
	"github.com/etnz/compound/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	frequencies := predict.Set(compound.ExtendedFrequencies.Names())
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"project": {
				Flags: map[string]complete.Predictor{
					"exact":    predict.Nothing,
					"json":     predict.Nothing,
					"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "CAD", "AUD"},
				},
				Args: predict.Set(compound.BaseFrequencies.Names()),
			},
			"contribute": {Args: frequencies},
			"schedule": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing, "json": predict.Nothing},
				Args:  predict.Set(compound.BaseFrequencies.Names()),
			},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(append(topics, "*")),
			},
		},
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
}
