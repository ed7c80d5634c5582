package model

// ProfileSize is the number of positions in a reference profile: every record
// column but the class.
const ProfileSize = FieldCount - 1

// FeatureColumns lists the positions that carry a value in a profile.
var FeatureColumns = []int{
	AgeColumn,
	WorkclassColumn,
	EducationNumColumn,
	MaritalStatusColumn,
	OccupationColumn,
	RelationshipColumn,
	RaceColumn,
	SexColumn,
	CapitalGainColumn,
	CapitalLossColumn,
	HoursPerWeekColumn,
}

// Vector is a fixed width sequence of optional values indexed by column.
// Unset positions are null and never take part in a comparison.
type Vector struct {
	values [ProfileSize]float64
	set    [ProfileSize]bool
}

func (v *Vector) Set(column int, value float64) {
	v.values[column] = value
	v.set[column] = true
}

// Get returns the value at column and whether it is set.
func (v *Vector) Get(column int) (float64, bool) {
	if column < 0 || column >= ProfileSize {
		return 0, false
	}
	return v.values[column], v.set[column]
}

// IsNull reports whether column holds no value.
func (v *Vector) IsNull(column int) bool {
	_, ok := v.Get(column)
	return !ok
}
