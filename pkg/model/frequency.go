package model

// CategoryCounts maps a category value to its number of occurrences.
type CategoryCounts map[string]int

func (c CategoryCounts) Add(value string) {
	c[value]++
}

// ClassTable holds the category counts of the records sharing one class.
type ClassTable struct {
	Count      int
	Categories Categorical[CategoryCounts]
}

func newClassTable() ClassTable {
	return ClassTable{
		Categories: Categorical[CategoryCounts]{
			Workclass:     CategoryCounts{},
			MaritalStatus: CategoryCounts{},
			Occupation:    CategoryCounts{},
			Relationship:  CategoryCounts{},
			Race:          CategoryCounts{},
			Sex:           CategoryCounts{},
		},
	}
}

func (t *ClassTable) observe(c Categorical[string]) {
	t.Count++
	t.Categories.Workclass.Add(c.Workclass)
	t.Categories.MaritalStatus.Add(c.MaritalStatus)
	t.Categories.Occupation.Add(c.Occupation)
	t.Categories.Relationship.Add(c.Relationship)
	t.Categories.Race.Add(c.Race)
	t.Categories.Sex.Add(c.Sex)
}

// Frequencies returns the share of the class records holding each of the
// given category values.
func (t *ClassTable) Frequencies(c Categorical[string]) Categorical[float64] {
	total := float64(t.Count)
	if total == 0 {
		return Categorical[float64]{}
	}
	return Categorical[float64]{
		Workclass:     float64(t.Categories.Workclass[c.Workclass]) / total,
		MaritalStatus: float64(t.Categories.MaritalStatus[c.MaritalStatus]) / total,
		Occupation:    float64(t.Categories.Occupation[c.Occupation]) / total,
		Relationship:  float64(t.Categories.Relationship[c.Relationship]) / total,
		Race:          float64(t.Categories.Race[c.Race]) / total,
		Sex:           float64(t.Categories.Sex[c.Sex]) / total,
	}
}

// FrequencyTables holds the per class occurrence counts gathered over a whole
// dataset. They are built by the encoder and are read only afterwards.
type FrequencyTables struct {
	Under ClassTable
	Over  ClassTable
}

func NewFrequencyTables() *FrequencyTables {
	return &FrequencyTables{
		Under: newClassTable(),
		Over:  newClassTable(),
	}
}

// Observe counts the categorical values and the class of one record and
// returns the class it was counted under. Records with an unknown class are
// counted as over.
func (f *FrequencyTables) Observe(r *RawRecord) Label {
	label := r.Label()
	if label != Under {
		label = Over
	}
	f.Table(label).observe(r.Categories)
	return label
}

// Table returns the counts for the given class. Unknown maps to over.
func (f *FrequencyTables) Table(label Label) *ClassTable {
	if label == Under {
		return &f.Under
	}
	return &f.Over
}

// UnderCount is the number of records observed with the under label.
func (f *FrequencyTables) UnderCount() int {
	return f.Under.Count
}

// OverCount is the number of records observed with the over label, including
// records with an unknown label.
func (f *FrequencyTables) OverCount() int {
	return f.Over.Count
}

// Total is the number of observed records.
func (f *FrequencyTables) Total() int {
	return f.Under.Count + f.Over.Count
}
