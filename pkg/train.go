package pkg

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"tally/pkg/model"
)

// BuildProfile derives the reference profile from a training slice: the mean
// of every feature column is taken per class and the two class means are
// averaged.
func BuildProfile(training []*model.Record) (*model.Profile, error) {
	var under, over []model.Vector
	for _, r := range training {
		if model.ParseLabel(r.Class) == model.Under {
			under = append(under, r.Features())
		} else {
			over = append(over, r.Features())
		}
	}

	if len(under) == 0 {
		return nil, fmt.Errorf("%w %s", ErrEmptyPartition, model.UnderLabel)
	}
	if len(over) == 0 {
		return nil, fmt.Errorf("%w %s", ErrEmptyPartition, model.OverLabel)
	}

	profile := model.NewProfile(columnMeans(under), columnMeans(over))
	log.Debug().Int("Under", len(under)).Int("Over", len(over)).Msg("Built reference profile")
	return profile, nil
}

func columnMeans(vectors []model.Vector) map[int]float64 {
	means := make(map[int]float64, len(model.FeatureColumns))
	column := make([]float64, len(vectors))
	for _, c := range model.FeatureColumns {
		for i := range vectors {
			column[i], _ = vectors[i].Get(c)
		}
		means[c] = stat.Mean(column, nil)
	}
	return means
}
