package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tisubmit/internal/api/dto"
	"tisubmit/internal/auth"
	"tisubmit/internal/domain"
	"tisubmit/internal/indicator"
)

// Submitter is the slice of the Graph client the pipeline needs.
type Submitter interface {
	SubmitIndicator(ctx context.Context, ti *domain.ThreatIndicator) (*dto.IndicatorResponse, error)
}

// Result is the outcome of one CSV row. Row numbering is 1-based over the
// data rows, excluding the header.
type Result struct {
	Row      int
	Response *dto.IndicatorResponse
	Err      error
}

// ProcessCSV submits one indicator per CSV row, sequentially and in input
// order. Column headers are the wire-level attribute names; defaults fill
// attributes a row leaves blank. A failing row yields its own Result and
// does not stop later rows. Only a token acquisition failure aborts the
// remainder of the run, since no later row could succeed either.
func ProcessCSV(ctx context.Context, r io.Reader, defaults indicator.Parameters, submitter Submitter) ([]Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	// Reject unknown columns up front rather than failing every row.
	var scratch indicator.Parameters
	for _, column := range header {
		if err := scratch.SetField(column, ""); err != nil {
			return nil, fmt.Errorf("invalid csv header: %w", err)
		}
	}

	var results []Result
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			results = append(results, Result{Row: row, Err: fmt.Errorf("read csv row: %w", err)})
			continue
		}

		params := defaults
		for i, column := range header {
			if record[i] != "" {
				// Header already validated, SetField cannot fail here.
				_ = params.SetField(column, record[i])
			}
		}

		result := Result{Row: row}
		result.Response, result.Err = submitOne(ctx, params, submitter)

		var authErr *auth.Error
		if errors.As(result.Err, &authErr) {
			return append(results, result), result.Err
		}

		if result.Err != nil {
			log.Error("Indicator submission failed", "row", row, "error", result.Err)
		} else {
			log.Info("Indicator submitted", "row", row, "id", result.Response.ID)
		}
		results = append(results, result)
	}

	return results, nil
}

func submitOne(ctx context.Context, params indicator.Parameters, submitter Submitter) (*dto.IndicatorResponse, error) {
	ti, err := indicator.Build(params)
	if err != nil {
		return nil, err
	}
	return submitter.SubmitIndicator(ctx, ti)
}
