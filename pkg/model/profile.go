package model

// MarkerColumn is the profile position stamped with the label marker instead
// of an average.
const MarkerColumn = NativeCountryColumn

// Profile is the reference vector test records are compared against. It is
// built once from the training slice and never modified afterwards.
type Profile struct {
	Vector

	// Marker is the label stamped at MarkerColumn.
	Marker string
}

// NewProfile builds a profile whose feature columns hold the mid point of the
// two class means.
func NewProfile(underMeans, overMeans map[int]float64) *Profile {
	p := &Profile{Marker: OverLabel}
	for _, column := range FeatureColumns {
		p.Set(column, (overMeans[column]+underMeans[column])/2)
	}
	return p
}
