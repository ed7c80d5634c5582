package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"tally/pkg/model"
)

const maxLineSize = 1024 * 1024

var errInvalidEncoding = errors.New("record is not valid UTF-8")

// DataParameters controls how raw records are parsed.
type DataParameters struct {
	// StrictLabels rejects records whose class is neither of the two labels.
	StrictLabels bool
}

// ParseRecords reads records from input, one per line, fields separated by
// commas. Quotes carry no meaning. Blank lines are skipped. Any malformed
// record, or input that is not valid UTF-8, fails the whole ingestion.
func ParseRecords(input io.Reader, p DataParameters) ([]*model.RawRecord, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var result []*model.RawRecord
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !utf8.ValidString(text) {
			return nil, &IngestionError{Line: line, Err: errInvalidEncoding}
		}

		fields := strings.Split(text, ",")
		if len(fields) != model.FieldCount {
			return nil, &IngestionError{
				Line: line,
				Err:  fmt.Errorf("wrong number of fields: got %d, want %d", len(fields), model.FieldCount),
			}
		}

		record, err := parseRecord(fields, p)
		if err != nil {
			return nil, &IngestionError{Line: line, Err: err}
		}
		result = append(result, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IngestionError{Line: line + 1, Err: fmt.Errorf("error reading data: %w", err)}
	}

	if len(result) == 0 {
		return nil, &IngestionError{Err: ErrEmptyDataset}
	}
	return result, nil
}

func parseRecord(fields []string, p DataParameters) (*model.RawRecord, error) {
	var err error
	r := &model.RawRecord{
		Categories: model.Categorical[string]{
			Workclass:     fields[model.WorkclassColumn],
			MaritalStatus: fields[model.MaritalStatusColumn],
			Occupation:    fields[model.OccupationColumn],
			Relationship:  fields[model.RelationshipColumn],
			Race:          fields[model.RaceColumn],
			Sex:           fields[model.SexColumn],
		},
		Class: fields[model.ClassColumn],
	}

	integers := []struct {
		column int
		name   string
		target *int
	}{
		{model.AgeColumn, "age", &r.Age},
		{model.EducationNumColumn, "education-num", &r.EducationNum},
		{model.CapitalGainColumn, "capital-gain", &r.CapitalGain},
		{model.CapitalLossColumn, "capital-loss", &r.CapitalLoss},
		{model.HoursPerWeekColumn, "hours-per-week", &r.HoursPerWeek},
	}
	for _, field := range integers {
		*field.target, err = strconv.Atoi(strings.TrimSpace(fields[field.column]))
		if err != nil {
			return nil, fmt.Errorf("error parsing feature %s: %w", field.name, err)
		}
	}

	if p.StrictLabels && r.Label() == model.Unknown {
		return nil, fmt.Errorf("unknown class label %q", strings.TrimSpace(r.Class))
	}
	return r, nil
}
