package model

import "strings"

// FieldCount is the number of comma separated fields in a raw record.
const FieldCount = 15

// Column positions in a raw record.
const (
	AgeColumn = iota
	WorkclassColumn
	FnlwgtColumn
	EducationColumn
	EducationNumColumn
	MaritalStatusColumn
	OccupationColumn
	RelationshipColumn
	RaceColumn
	SexColumn
	CapitalGainColumn
	CapitalLossColumn
	HoursPerWeekColumn
	NativeCountryColumn
	ClassColumn
)

// Label is the binary income class of a record.
type Label int

const (
	Under Label = iota
	Over
	Unknown
)

const (
	UnderLabel = "<=50K"
	OverLabel  = ">50K"
)

// ParseLabel maps a class string, possibly padded with whitespace, to a Label.
func ParseLabel(value string) Label {
	switch strings.TrimSpace(value) {
	case UnderLabel:
		return Under
	case OverLabel:
		return Over
	default:
		return Unknown
	}
}

func (l Label) String() string {
	switch l {
	case Under:
		return UnderLabel
	case Over:
		return OverLabel
	default:
		return "unknown"
	}
}

// Categorical holds the six categorical attributes of a record.
type Categorical[T any] struct {
	Workclass     T
	MaritalStatus T
	Occupation    T
	Relationship  T
	Race          T
	Sex           T
}

// RawRecord is a parsed input line. Numeric columns are already integers,
// categorical columns keep their original text. Fnlwgt, Education and
// NativeCountry are not part of the model and are dropped on parse.
type RawRecord struct {
	Age          int
	EducationNum int
	CapitalGain  int
	CapitalLoss  int
	HoursPerWeek int
	Categories   Categorical[string]

	// Class is the label text as found in the input.
	Class string
}

// Label returns the class of the record, or Unknown.
func (r *RawRecord) Label() Label {
	return ParseLabel(r.Class)
}

// Record is an encoded record: categorical attributes are replaced by their
// relative frequency within the record's own class.
type Record struct {
	Age          int
	EducationNum int
	CapitalGain  int
	CapitalLoss  int
	HoursPerWeek int
	Frequencies  Categorical[float64]

	Class string
	// Label is the class the record was normalized against.
	Label Label
}

// Features returns the comparable fields of the record keyed by column position.
func (r *Record) Features() Vector {
	var v Vector
	v.Set(AgeColumn, float64(r.Age))
	v.Set(WorkclassColumn, r.Frequencies.Workclass)
	v.Set(EducationNumColumn, float64(r.EducationNum))
	v.Set(MaritalStatusColumn, r.Frequencies.MaritalStatus)
	v.Set(OccupationColumn, r.Frequencies.Occupation)
	v.Set(RelationshipColumn, r.Frequencies.Relationship)
	v.Set(RaceColumn, r.Frequencies.Race)
	v.Set(SexColumn, r.Frequencies.Sex)
	v.Set(CapitalGainColumn, float64(r.CapitalGain))
	v.Set(CapitalLossColumn, float64(r.CapitalLoss))
	v.Set(HoursPerWeekColumn, float64(r.HoursPerWeek))
	return v
}
