package autofill

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/ae-qualify/internal/extraction"
	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// FileInput is one uploaded file handed to the filler. Text is the already
// extracted plain text of the document; it may be empty.
type FileInput struct {
	FileName  string
	Size      int64
	ProjectID string
	Text      string
}

// FileOutcome reports what happened to one file: the asset recorded for it,
// the form its fields merged into, and the error if extraction failed. A
// failed file still gets an asset record; it just merges nothing.
type FileOutcome struct {
	FileName string             `json:"fileName"`
	AssetID  string             `json:"assetId"`
	Target   types.FormKind     `json:"target,omitempty"`
	Result   *extraction.Result `json:"result,omitempty"`
	Err      error              `json:"-"`
}

// BatchOutcome aggregates per-file outcomes of one upload batch.
type BatchOutcome struct {
	Outcomes []FileOutcome `json:"outcomes"`
}

// Succeeded counts files whose extraction merged into a form.
func (b BatchOutcome) Succeeded() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts files whose extraction produced no merge.
func (b BatchOutcome) Failed() int {
	return len(b.Outcomes) - b.Succeeded()
}

// Filler runs extraction over uploaded files and dispatches the results
// into the state store.
type Filler struct {
	store     *store.Store
	extractor extraction.Extractor
}

// New creates a filler bound to a store and an extractor.
func New(st *store.Store, ex extraction.Extractor) *Filler {
	return &Filler{store: st, extractor: ex}
}

// Fill processes one file: records its asset, extracts, and merges the
// result into the form the extractor targeted. The loading flag is raised
// for the duration and always lowered, even on failure.
func (f *Filler) Fill(ctx context.Context, file FileInput) FileOutcome {
	f.store.Dispatch(store.SetLoading{Loading: true})
	defer f.store.Dispatch(store.SetLoading{Loading: false})

	return f.fillOne(ctx, file, "")
}

// FillForForm is Fill with the destination form forced, overriding whatever
// the extractor would have targeted.
func (f *Filler) FillForForm(ctx context.Context, file FileInput, target types.FormKind) FileOutcome {
	f.store.Dispatch(store.SetLoading{Loading: true})
	defer f.store.Dispatch(store.SetLoading{Loading: false})

	return f.fillOne(ctx, file, target)
}

// FillBatch processes a batch of files with per-file isolation: a failed
// extraction records its error and moves on, it never blocks the rest.
func (f *Filler) FillBatch(ctx context.Context, files []FileInput) BatchOutcome {
	f.store.Dispatch(store.SetLoading{Loading: true})
	defer f.store.Dispatch(store.SetLoading{Loading: false})

	outcome := BatchOutcome{Outcomes: make([]FileOutcome, 0, len(files))}
	for _, file := range files {
		outcome.Outcomes = append(outcome.Outcomes, f.fillOne(ctx, file, ""))
	}

	log.Printf("[AUTOFILL] Batch complete: %d merged, %d failed", outcome.Succeeded(), outcome.Failed())
	return outcome
}

func (f *Filler) fillOne(ctx context.Context, file FileInput, forced types.FormKind) FileOutcome {
	asset := types.NewUploadedAsset(file.FileName, file.Size, file.ProjectID)
	outcome := FileOutcome{FileName: file.FileName, AssetID: asset.ID}

	result, err := f.extractor.Extract(ctx, extraction.Document{
		FileName: file.FileName,
		Text:     file.Text,
	})
	if err != nil {
		f.store.Dispatch(store.AddAsset{Asset: asset})
		log.Printf("[AUTOFILL] Extraction failed for %s: %v", file.FileName, err)
		outcome.Err = NewFillError(file.FileName, err)
		return outcome
	}

	// A cancelled upload must not merge late results into the form.
	if err := ctx.Err(); err != nil {
		f.store.Dispatch(store.AddAsset{Asset: asset})
		outcome.Err = NewFillError(file.FileName, err)
		return outcome
	}

	target := forced
	if target == "" {
		target = ResolveTarget(result)
	}
	result.Target = target

	patch, err := result.Patch()
	if err != nil {
		f.store.Dispatch(store.AddAsset{Asset: asset})
		log.Printf("[AUTOFILL] Undecodable extraction for %s: %v", file.FileName, err)
		outcome.Err = NewFillError(file.FileName, err)
		return outcome
	}

	var extracted map[string]any
	if json.Unmarshal(result.Fields, &extracted) == nil {
		asset.ExtractedData = extracted
	}
	f.store.Dispatch(store.AddAsset{Asset: asset})
	f.store.Dispatch(store.AutoFillFromExtraction{Patch: patch})

	log.Printf("[AUTOFILL] Merged %s into %s (confidence %.2f)", file.FileName, target, result.Confidence)
	outcome.Target = target
	outcome.Result = &result
	return outcome
}
