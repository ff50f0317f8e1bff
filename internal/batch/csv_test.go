package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"tisubmit/internal/api/dto"
	"tisubmit/internal/auth"
	"tisubmit/internal/domain"
	"tisubmit/internal/graph"
	"tisubmit/internal/indicator"
)

type fakeSubmitter struct {
	calls   int
	failOn  map[int]error
	lastTI  *domain.ThreatIndicator
	replies []*dto.IndicatorResponse
}

func (f *fakeSubmitter) SubmitIndicator(_ context.Context, ti *domain.ThreatIndicator) (*dto.IndicatorResponse, error) {
	f.calls++
	f.lastTI = ti
	if err, ok := f.failOn[f.calls]; ok {
		return nil, err
	}
	reply := &dto.IndicatorResponse{ID: fmt.Sprintf("ti-%d", f.calls)}
	f.replies = append(f.replies, reply)
	return reply, nil
}

func batchDefaults() indicator.Parameters {
	return indicator.Parameters{
		Action:             "alert",
		ExpirationDateTime: "2030-06-01",
		TargetProduct:      "Azure Sentinel",
		TLPLevel:           "amber",
	}
}

const threeRowCSV = `description,threatType,fileHashType,fileHashValue
first hash,Malware,sha256,aaa
second hash,Malware,sha256,bbb
third hash,CryptoMining,md5,ccc
`

func TestProcessCSVAllRowsSucceed(t *testing.T) {
	submitter := &fakeSubmitter{}
	results, err := ProcessCSV(context.Background(), strings.NewReader(threeRowCSV), batchDefaults(), submitter)
	if err != nil {
		t.Fatalf("ProcessCSV returned error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, result := range results {
		if result.Err != nil {
			t.Fatalf("row %d failed: %v", i+1, result.Err)
		}
		if result.Row != i+1 {
			t.Fatalf("result %d has row %d, want %d", i, result.Row, i+1)
		}
	}

	// Defaults fill attributes rows leave blank; row values win otherwise.
	if submitter.lastTI.Action != domain.ActionAlert {
		t.Fatalf("last indicator action = %q, want alert from defaults", submitter.lastTI.Action)
	}
	if submitter.lastTI.ThreatType != domain.ThreatCryptoMining {
		t.Fatalf("last indicator threatType = %q, want CryptoMining from row", submitter.lastTI.ThreatType)
	}
}

func TestProcessCSVRowFailureIsIsolated(t *testing.T) {
	apiErr := &graph.APIError{StatusCode: 400, Status: "400 Bad Request", Body: `{"error":"schema"}`}
	submitter := &fakeSubmitter{failOn: map[int]error{2: apiErr}}

	results, err := ProcessCSV(context.Background(), strings.NewReader(threeRowCSV), batchDefaults(), submitter)
	if err != nil {
		t.Fatalf("ProcessCSV returned error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("rows 1 and 3 should succeed, got %v and %v", results[0].Err, results[2].Err)
	}

	var gotAPIErr *graph.APIError
	if !errors.As(results[1].Err, &gotAPIErr) {
		t.Fatalf("row 2 error = %v, want APIError", results[1].Err)
	}
	if gotAPIErr.Body != `{"error":"schema"}` {
		t.Fatalf("row 2 error body = %q, want captured response body", gotAPIErr.Body)
	}
	if submitter.calls != 3 {
		t.Fatalf("submitter called %d times, want 3", submitter.calls)
	}
}

func TestProcessCSVValidationFailureSkipsSubmission(t *testing.T) {
	csvData := `description,threatType,fileHashType,fileHashValue
ok hash,Malware,sha256,aaa
bad hash,NotAThreatType,sha256,bbb
`
	submitter := &fakeSubmitter{}
	results, err := ProcessCSV(context.Background(), strings.NewReader(csvData), batchDefaults(), submitter)
	if err != nil {
		t.Fatalf("ProcessCSV returned error: %v", err)
	}

	var vErr *indicator.ValidationError
	if !errors.As(results[1].Err, &vErr) {
		t.Fatalf("row 2 error = %v, want ValidationError", results[1].Err)
	}
	if submitter.calls != 1 {
		t.Fatalf("submitter called %d times, want 1 (invalid row never submitted)", submitter.calls)
	}
}

func TestProcessCSVAuthFailureAbortsRun(t *testing.T) {
	authErr := &auth.Error{Err: errors.New("invalid_client")}
	submitter := &fakeSubmitter{failOn: map[int]error{1: authErr}}

	results, err := ProcessCSV(context.Background(), strings.NewReader(threeRowCSV), batchDefaults(), submitter)

	var gotAuthErr *auth.Error
	if !errors.As(err, &gotAuthErr) {
		t.Fatalf("ProcessCSV returned %v, want auth.Error", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (run aborted after auth failure)", len(results))
	}
	if submitter.calls != 1 {
		t.Fatalf("submitter called %d times, want 1", submitter.calls)
	}
}

func TestProcessCSVRejectsUnknownHeader(t *testing.T) {
	csvData := `description,fileHashColor
hash,red
`
	submitter := &fakeSubmitter{}
	_, err := ProcessCSV(context.Background(), strings.NewReader(csvData), batchDefaults(), submitter)
	if err == nil {
		t.Fatal("ProcessCSV accepted an unknown column header")
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter called %d times, want 0", submitter.calls)
	}
}
