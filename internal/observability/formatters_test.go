package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/progress"
	"github.com/jonathan/ae-qualify/internal/types"
)

func TestPrintProgressReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := progress.Report{
		Percentage:          40,
		FilledFields:        6,
		TotalRequiredFields: 15,
		MissingFields: []progress.FieldStatus{
			{Field: "contractNumber", Label: "Contract Number", Required: true},
		},
	}
	p.PrintProgressReport(types.FormTypeSF252, report)

	out := buf.String()
	if !strings.Contains(out, "SF252 Progress") {
		t.Error("box title should name the form")
	}
	if !strings.Contains(out, "40%") {
		t.Error("output should contain the percentage")
	}
	if !strings.Contains(out, "Contract Number") {
		t.Error("output should list missing field labels")
	}
}

func TestPrintBatchOutcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	batch := autofill.BatchOutcome{Outcomes: []autofill.FileOutcome{
		{FileName: "resume.pdf", AssetID: "a1", Target: types.KindSF330PartI},
		{FileName: "broken.pdf", Err: errors.New("model unreachable")},
	}}
	p.PrintBatchOutcome(batch)

	out := buf.String()
	if !strings.Contains(out, "resume.pdf") || !strings.Contains(out, "broken.pdf") {
		t.Error("every file should appear in the summary")
	}
	if !strings.Contains(out, "Merged: 1") || !strings.Contains(out, "Failed: 1") {
		t.Errorf("summary counts wrong:\n%s", out)
	}
}

func TestPrintStateSummaryMarksActiveProject(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	state := types.NewDashboardState()
	p.PrintStateSummary(state)

	out := buf.String()
	if !strings.Contains(out, "▸ ") {
		t.Error("active project should be marked")
	}
	if !strings.Contains(out, "SF330") {
		t.Error("active form should appear")
	}
}
