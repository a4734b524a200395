package analyzer

import (
	"github.com/katalvlaran/cshm/flexible"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/optimizer"
)

// optimizerProfile maps a model.Mode to its optimizer.Profile.
func optimizerProfile(mode model.Mode) optimizer.Profile {
	if mode == model.ModeIntensive {
		return optimizer.IntensiveProfile()
	}
	return optimizer.DefaultProfile()
}

// flexibleOptions maps a model.Mode to its flexible.Options.
func flexibleOptions(mode model.Mode, seed uint64) flexible.Options {
	opts := flexible.DefaultOptions()
	if mode == model.ModeIntensive {
		opts = flexible.IntensiveOptions()
	}
	opts.Seed = seed
	return opts
}
