package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tally/pkg/model"
)

func TestBuildProfile(t *testing.T) {
	records, _ := loadRecords(t, fourRecords)

	profile, err := BuildProfile(records[:2])
	require.NoError(t, err)

	expected := map[int]float64{
		model.AgeColumn:           40,
		model.WorkclassColumn:     0.75,
		model.EducationNumColumn:  12,
		model.MaritalStatusColumn: 0.75,
		model.OccupationColumn:    1,
		model.RelationshipColumn:  0.75,
		model.RaceColumn:          1,
		model.SexColumn:           0.75,
		model.CapitalGainColumn:   2500,
		model.CapitalLossColumn:   0,
		model.HoursPerWeekColumn:  45,
	}
	for column, want := range expected {
		got, ok := profile.Get(column)
		require.True(t, ok, "column %d", column)
		require.InDelta(t, want, got, 1e-9, "column %d", column)
	}
	require.True(t, profile.IsNull(model.FnlwgtColumn))
	require.True(t, profile.IsNull(model.EducationColumn))
	require.Equal(t, model.OverLabel, profile.Marker)
}

func TestBuildProfile_SingleDifference(t *testing.T) {
	under := &model.Record{
		Age: 40, EducationNum: 10, CapitalGain: 100, CapitalLoss: 5, HoursPerWeek: 40,
		Frequencies: model.Categorical[float64]{Workclass: 0.5, MaritalStatus: 0.4, Occupation: 0.3, Relationship: 0.2, Race: 0.9, Sex: 0.6},
		Class:       " <=50K",
		Label:       model.Under,
	}
	over := *under
	over.Class = " >50K"
	over.Label = model.Over
	over.HoursPerWeek = 60

	profile, err := BuildProfile([]*model.Record{under, &over})
	require.NoError(t, err)

	features := under.Features()
	for _, column := range model.FeatureColumns {
		got, _ := profile.Get(column)
		if column == model.HoursPerWeekColumn {
			require.Equal(t, 50.0, got)
			continue
		}
		want, _ := features.Get(column)
		require.InDelta(t, want, got, 1e-12, "column %d", column)
	}
}

func TestBuildProfile_Idempotent(t *testing.T) {
	records, _ := loadRecords(t, fourRecords)

	first, err := BuildProfile(records)
	require.NoError(t, err)
	second, err := BuildProfile(records)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBuildProfile_EmptyPartition(t *testing.T) {
	records, _ := loadRecords(t, fourRecords)

	_, err := BuildProfile([]*model.Record{records[0], records[2]})
	require.True(t, errors.Is(err, ErrEmptyPartition))
	require.Contains(t, err.Error(), model.OverLabel)

	_, err = BuildProfile([]*model.Record{records[1]})
	require.True(t, errors.Is(err, ErrEmptyPartition))
	require.Contains(t, err.Error(), model.UnderLabel)

	_, err = BuildProfile(nil)
	require.True(t, errors.Is(err, ErrEmptyPartition))
}
