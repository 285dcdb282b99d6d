// Package detector runs the validation and scoring pipeline for a single
// classification.
package detector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/spamdetector/pkg/classify"
	"github.com/mchmarny/spamdetector/pkg/score"
	"github.com/mchmarny/spamdetector/pkg/table"
	"github.com/mchmarny/spamdetector/pkg/text"
	"github.com/mchmarny/spamdetector/pkg/threshold"
)

// Input holds the raw arguments of one classification.
type Input struct {
	DatabasePath string
	TextPath     string
	Threshold    string
}

// Run validates in, in the fixed order threshold, database, text, then
// scores and classifies. The first failure stops the pipeline; its error
// wraps threshold.ErrInvalid, table.ErrNotFound, table.ErrMalformed or
// text.ErrNotFound.
func Run(ctx context.Context, in Input) (*classify.Report, error) {
	limit, err := threshold.Parse(in.Threshold)
	if err != nil {
		return nil, err
	}
	slog.Debug("threshold validated", "threshold", limit)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classification canceled: %w", err)
	}

	tbl, err := table.Load(in.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("database %s: %w", in.DatabasePath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classification canceled: %w", err)
	}

	content, err := text.Load(in.TextPath)
	if err != nil {
		return nil, fmt.Errorf("text %s: %w", in.TextPath, err)
	}

	res := score.Text(tbl, content)
	slog.Debug("text scored", "score", res.Score, "matches", len(res.Matches))

	r := classify.NewReport(res, limit)
	slog.Debug("text classified", "verdict", r.Verdict)
	return r, nil
}
