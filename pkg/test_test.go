package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"tally/pkg/model"
)

func uniformProfile(value float64) *model.Profile {
	means := map[int]float64{}
	for _, column := range model.FeatureColumns {
		means[column] = value
	}
	return model.NewProfile(means, means)
}

func uniformRecord(value int, class string) *model.Record {
	f := float64(value)
	return &model.Record{
		Age:          value,
		EducationNum: value,
		CapitalGain:  value,
		CapitalLoss:  value,
		HoursPerWeek: value,
		Frequencies:  model.Categorical[float64]{Workclass: f, MaritalStatus: f, Occupation: f, Relationship: f, Race: f, Sex: f},
		Class:        class,
		Label:        model.ParseLabel(class),
	}
}

func TestPredict(t *testing.T) {
	profile := uniformProfile(0.5)

	over := Predict(uniformRecord(1, " >50K"), profile)
	require.Equal(t, model.Over, over.Predicted)
	require.Equal(t, len(model.FeatureColumns), over.OverVotes)
	require.Equal(t, 0, over.UnderVotes)
	under, overMarker := over.Markers()
	require.Equal(t, "", under)
	require.Equal(t, OverMarker, overMarker)

	under0 := Predict(uniformRecord(0, " <=50K"), profile)
	require.Equal(t, model.Under, under0.Predicted)
	require.Equal(t, len(model.FeatureColumns), under0.UnderVotes)
	underMarker, overMarker := under0.Markers()
	require.Equal(t, UnderMarker, underMarker)
	require.Equal(t, "", overMarker)

	// Equal values vote under.
	equal := Predict(uniformRecord(1, " >50K"), uniformProfile(1))
	require.Equal(t, model.Under, equal.Predicted)
}

func TestPredict_TieAndNullColumns(t *testing.T) {
	profile := &model.Profile{Marker: model.OverLabel}
	// Workclass is left null and never compared.
	for _, column := range model.FeatureColumns {
		if column != model.WorkclassColumn {
			profile.Set(column, 0.5)
		}
	}

	r := uniformRecord(0, " >50K")
	r.Age = 1
	r.EducationNum = 1
	r.CapitalGain = 1
	r.CapitalLoss = 1
	r.HoursPerWeek = 1

	p := Predict(r, profile)
	require.Equal(t, 5, p.OverVotes)
	require.Equal(t, 5, p.UnderVotes)
	require.Equal(t, model.Under, p.Predicted)
}

func TestEvaluate(t *testing.T) {
	test := []*model.Record{
		uniformRecord(0, " <=50K"),
		uniformRecord(1, " <=50K"),
		uniformRecord(0, " >50K"),
		uniformRecord(0, " unknown"),
	}

	report, err := Evaluate(test, uniformProfile(0.5))
	require.NoError(t, err)
	require.Equal(t, 4, len(report.Predictions))
	require.Equal(t, 2, report.TrueUnder)
	require.Equal(t, 1, report.TrueOver)
	require.Equal(t, 3, report.PredictedUnder)
	require.Equal(t, 1, report.PredictedOver)
	require.Equal(t, 1, report.Correct)

	accuracy, err := report.Accuracy()
	require.NoError(t, err)
	require.InDelta(t, 200.0/3.0, accuracy, 1e-9)
	require.InDelta(t, 25.0, report.TrueAccuracy(), 1e-9)

	underMetrics := report.Metrics[model.UnderLabel]
	require.Equal(t, 1, underMetrics.TruePos)
	require.Equal(t, 1, underMetrics.FalseNeg)
	require.Equal(t, 2, underMetrics.FalsePos)
	require.Equal(t, 1, report.Metrics["unknown"].FalseNeg)

	var b bytes.Buffer
	logger := log.Logger
	log.Logger = zerolog.New(&b)
	defer func() { log.Logger = logger }()
	report.LogMetrics()
	require.Contains(t, b.String(), `"TrueUnder":2`)
	require.Contains(t, b.String(), `"TrueOver":1`)
	require.Contains(t, b.String(), `"TrueAccuracy":25`)
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate(nil, uniformProfile(0.5))
	require.True(t, errors.Is(err, ErrEmptyTestSlice))

	report, err := Evaluate([]*model.Record{uniformRecord(1, " <=50K")}, uniformProfile(0.5))
	require.True(t, errors.Is(err, ErrZeroPrediction))
	_, err = report.Accuracy()
	require.True(t, errors.Is(err, ErrZeroPrediction))
}
