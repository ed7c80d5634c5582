package pkg

import (
	"bytes"
	"context"
	"fmt"
	gio "io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tally/pkg/config"
	"tally/pkg/io"
	"tally/pkg/source"
)

// Run fetches the dataset named by cfg, encodes it, builds the reference
// profile from the training slice and evaluates the test slice. The accuracy
// line is written to stdout.
func Run(ctx context.Context, cfg config.Config, src source.Source, stdout gio.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := log.With().Str("Run", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	data, err := src.Fetch(ctx, cfg.Source)
	if err != nil {
		return &io.IngestionError{Err: err}
	}

	raw, err := io.ParseRecords(bytes.NewReader(data), io.DataParameters{StrictLabels: cfg.StrictLabels})
	if err != nil {
		return err
	}

	records, tables := Encode(raw)
	logger.Info().
		Str("Source", cfg.Source).
		Int("Records", tables.Total()).
		Int("Under", tables.UnderCount()).
		Int("Over", tables.OverCount()).
		Msg("Loaded dataset")

	training, test, err := io.Split(records, cfg.Percent)
	if err != nil {
		return err
	}
	logger.Info().Int("Training", len(training)).Int("Test", len(test)).Msg("Split dataset")

	profile, err := BuildProfile(training)
	if err != nil {
		return fmt.Errorf("error building profile: %w", err)
	}

	report, err := Evaluate(test, profile)
	if err != nil {
		return fmt.Errorf("error evaluating test data: %w", err)
	}

	if err := writePredictions(cfg.Output, report); err != nil {
		return err
	}

	accuracy, err := report.Accuracy()
	if err != nil {
		return err
	}
	report.LogMetrics()

	_, err = fmt.Fprintf(stdout, "Classifier accuracy: %.2f%%\n", accuracy)
	return err
}

func writePredictions(outputFileName string, report *Report) error {
	var outputWriter gio.Writer
	if outputFileName != "" {
		outputFile, err := os.Create(outputFileName)
		if err != nil {
			return fmt.Errorf("error opening output file %s: %w", outputFileName, err)
		}
		defer outputFile.Close()
		outputWriter = outputFile
	} else {
		outputWriter = io.NoopWriter{}
	}

	writer := io.NewPredictionWriter(outputWriter)
	for _, p := range report.Predictions {
		under, over := p.Markers()
		if err := writer.Write(strings.TrimSpace(p.Class), under, over); err != nil {
			return err
		}
	}
	return writer.Flush()
}
