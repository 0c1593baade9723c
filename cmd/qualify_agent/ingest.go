package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/ingestion"
	"github.com/jonathan/ae-qualify/internal/observability"
	"github.com/jonathan/ae-qualify/internal/types"
)

var (
	ingestProjectID string
	ingestTarget    string
	ingestMock      bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Extract documents and auto-fill form fields",
	Long:  "Extract each document with the AI model and merge the recognized fields into the matching qualification form. Resumes fill SF330 Part I personnel, firm profiles fill Part II, contracts fill SF252.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestProjectID, "project", "", "Project id to attach uploads to (default: active project)")
	ingestCmd.Flags().StringVar(&ingestTarget, "target", "", "Force a target form (SF330_PART_I, SF330_PART_II, SF254, SF255, SF252)")
	ingestCmd.Flags().BoolVar(&ingestMock, "mock", false, "Use fixture extraction instead of Gemini")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var forced types.FormKind
	if ingestTarget != "" {
		forced, err = types.ParseFormKind(ingestTarget)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	st, writer, cleanup, err := openState(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor, err := buildExtractor(ctx, cfg, ingestMock || cfg.MockExtract)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	if err := ingestion.ValidateBatch(len(args), cfg.MaxFilesPerBatch); err != nil {
		return err
	}

	projectID := ingestProjectID
	if projectID == "" {
		projectID = st.Snapshot().ActiveProjectID
	}

	filler := autofill.New(st, extractor)
	var batch autofill.BatchOutcome

	for _, path := range args {
		input, err := readDocument(path, projectID, cfg.MaxFileSizeMB)
		if err != nil {
			batch.Outcomes = append(batch.Outcomes, autofill.FileOutcome{
				FileName: path, Err: err,
			})
			continue
		}

		var outcome autofill.FileOutcome
		if forced != "" {
			outcome = filler.FillForForm(ctx, input, forced)
		} else {
			outcome = filler.Fill(ctx, input)
		}
		batch.Outcomes = append(batch.Outcomes, outcome)
	}

	writer.Flush()

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchOutcome(batch)

	if batch.Failed() > 0 {
		return fmt.Errorf("%d of %d files failed", batch.Failed(), len(batch.Outcomes))
	}
	return nil
}

// readDocument validates one file on disk and converts it to a FileInput.
func readDocument(path, projectID string, maxSizeMB int) (autofill.FileInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return autofill.FileInput{}, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	name := ingestion.SanitizeFileName(path)
	if err := ingestion.ValidateFile(name, info.Size(), maxSizeMB); err != nil {
		return autofill.FileInput{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return autofill.FileInput{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	text, err := ingestion.ExtractText(name, content)
	if err != nil {
		return autofill.FileInput{}, err
	}

	return autofill.FileInput{
		FileName:  name,
		Size:      info.Size(),
		ProjectID: projectID,
		Text:      text,
	}, nil
}
