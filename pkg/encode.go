package pkg

import (
	"github.com/rs/zerolog/log"

	"tally/pkg/model"
)

// Encode replaces the categorical attributes of every record with their
// relative frequency among the records of the same class. Counts are gathered
// over all records before any of them is normalized, so the returned tables
// describe the whole dataset.
func Encode(raw []*model.RawRecord) ([]*model.Record, *model.FrequencyTables) {
	tables := model.NewFrequencyTables()
	labels := make([]model.Label, len(raw))
	for i, r := range raw {
		labels[i] = tables.Observe(r)
	}

	result := make([]*model.Record, len(raw))
	for i, r := range raw {
		result[i] = &model.Record{
			Age:          r.Age,
			EducationNum: r.EducationNum,
			CapitalGain:  r.CapitalGain,
			CapitalLoss:  r.CapitalLoss,
			HoursPerWeek: r.HoursPerWeek,
			Frequencies:  tables.Table(labels[i]).Frequencies(r.Categories),
			Class:        r.Class,
			Label:        labels[i],
		}
	}

	log.Debug().
		Int("Records", len(result)).
		Int("Under", tables.UnderCount()).
		Int("Over", tables.OverCount()).
		Msg("Encoded dataset")
	return result, tables
}
