package pkg

import (
	"sort"
	"strings"

	"github.com/nlpodyssey/spago/pkg/ml/stats"
	"github.com/rs/zerolog/log"

	"tally/pkg/model"
)

const (
	UnderMarker = "Under 50K"
	OverMarker  = "Over 50K"
)

// Prediction is the outcome of comparing one test record with the profile.
type Prediction struct {
	// Class is the label text of the record as found in the input.
	Class     string
	Truth     model.Label
	Predicted model.Label

	OverVotes  int
	UnderVotes int
}

// Markers returns the under and over markers of the prediction; the marker of
// the class not predicted is empty.
func (p Prediction) Markers() (under, over string) {
	if p.Predicted == model.Under {
		return UnderMarker, ""
	}
	return "", OverMarker
}

// Report aggregates the predictions over a test slice.
type Report struct {
	Predictions []Prediction

	TrueUnder      int
	TrueOver       int
	PredictedUnder int
	PredictedOver  int
	Correct        int

	// Metrics holds per class counts keyed by label.
	Metrics map[string]*stats.ClassMetrics
}

// Accuracy is the figure the classifier has always reported: the number of
// test records labelled under divided by the number predicted under. It is
// not the share of correct predictions, see TrueAccuracy.
func (r *Report) Accuracy() (float64, error) {
	if r.PredictedUnder == 0 {
		return 0, ErrZeroPrediction
	}
	return float64(r.TrueUnder) / float64(r.PredictedUnder) * 100, nil
}

// TrueAccuracy is the percentage of test records whose predicted class
// matches their label.
func (r *Report) TrueAccuracy() float64 {
	if len(r.Predictions) == 0 {
		return 0
	}
	return float64(r.Correct) / float64(len(r.Predictions)) * 100
}

// Predict compares every feature of the record with the profile. A feature
// greater than the profile value votes over, any other comparable feature
// votes under. Positions null on either side are skipped. Ties go to under.
func Predict(r *model.Record, profile *model.Profile) Prediction {
	p := Prediction{
		Class: r.Class,
		Truth: model.ParseLabel(r.Class),
	}

	features := r.Features()
	for column := 0; column < model.ProfileSize; column++ {
		if features.IsNull(column) || profile.IsNull(column) {
			continue
		}
		value, _ := features.Get(column)
		reference, _ := profile.Get(column)
		if value > reference {
			p.OverVotes++
		} else {
			p.UnderVotes++
		}
	}

	if p.OverVotes > p.UnderVotes {
		p.Predicted = model.Over
	} else {
		p.Predicted = model.Under
	}
	return p
}

// Evaluate predicts every test record against the profile and tallies the
// outcome.
func Evaluate(test []*model.Record, profile *model.Profile) (*Report, error) {
	if len(test) == 0 {
		return nil, ErrEmptyTestSlice
	}

	report := &Report{
		Predictions: make([]Prediction, 0, len(test)),
		Metrics:     map[string]*stats.ClassMetrics{},
	}
	for _, r := range test {
		prediction := Predict(r, profile)
		report.add(prediction)
	}

	if report.PredictedUnder == 0 {
		return report, ErrZeroPrediction
	}
	return report, nil
}

func (r *Report) add(p Prediction) {
	r.Predictions = append(r.Predictions, p)

	switch p.Truth {
	case model.Under:
		r.TrueUnder++
	case model.Over:
		r.TrueOver++
	}
	if p.Predicted == model.Under {
		r.PredictedUnder++
	} else {
		r.PredictedOver++
	}

	label := p.Truth.String()
	if p.Truth == model.Unknown {
		label = strings.TrimSpace(p.Class)
	}
	predictedClass := p.Predicted.String()

	labelClassMetrics, ok := r.Metrics[label]
	if !ok {
		labelClassMetrics = stats.NewMetricCounter()
		r.Metrics[label] = labelClassMetrics
	}
	predictedClassMetrics, ok := r.Metrics[predictedClass]
	if !ok {
		predictedClassMetrics = stats.NewMetricCounter()
		r.Metrics[predictedClass] = predictedClassMetrics
	}

	if label == predictedClass {
		r.Correct++
		labelClassMetrics.IncTruePos()
	} else {
		labelClassMetrics.IncFalseNeg()
		predictedClassMetrics.IncFalsePos()
	}
}

// LogMetrics logs the per class metrics and the share of correct predictions.
func (r *Report) LogMetrics() {
	// Sort class names for deterministic output
	for _, class := range sortClasses(r.Metrics) {
		result := r.Metrics[class]
		log.Info().Str("Class", class).
			Int("TP", result.TruePos).
			Int("FP", result.FalsePos).
			Int("FN", result.FalseNeg).
			Float64("Precision", result.Precision()).
			Float64("Recall", result.Recall()).
			Float64("F1", result.F1Score()).
			Msg("")
	}

	macroF1, microF1 := computeOverallF1(r.Metrics)
	log.Info().
		Int("TrueUnder", r.TrueUnder).
		Int("TrueOver", r.TrueOver).
		Int("PredictedUnder", r.PredictedUnder).
		Int("PredictedOver", r.PredictedOver).
		Float64("TrueAccuracy", r.TrueAccuracy()).
		Float64("MacroF1", macroF1).
		Float64("MicroF1", microF1).
		Msg("Prediction quality")
}

func computeOverallF1(metrics map[string]*stats.ClassMetrics) (float64, float64) {
	macroF1 := 0.0
	for _, metric := range metrics {
		macroF1 += metric.F1Score()
	}
	macroF1 /= float64(len(metrics))

	micro := stats.NewMetricCounter()
	for _, result := range metrics {
		micro.TruePos += result.TruePos
		micro.FalsePos += result.FalsePos
		micro.FalseNeg += result.FalseNeg
		micro.TrueNeg += result.TrueNeg
	}
	return macroF1, micro.F1Score()
}

func sortClasses(metrics map[string]*stats.ClassMetrics) []string {
	result := make([]string, 0, len(metrics))
	for class := range metrics {
		result = append(result, class)
	}
	sort.Strings(result)
	return result
}
