package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ae-qualify/internal/observability"
	"github.com/jonathan/ae-qualify/internal/progress"
	"github.com/jonathan/ae-qualify/internal/types"
)

var progressCmd = &cobra.Command{
	Use:   "progress [form]",
	Short: "Report form completion",
	Long:  "Score the required-field checklists of the qualification forms. With no argument, all four forms are reported.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgress,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show projects, uploads, and the active form",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statusCmd)
}

func runProgress(_ *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, _, cleanup, err := openState(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	forms := []types.FormType{
		types.FormTypeSF330, types.FormTypeSF254, types.FormTypeSF255, types.FormTypeSF252,
	}
	if len(args) == 1 {
		form := types.FormType(args[0])
		switch form {
		case types.FormTypeSF330, types.FormTypeSF254, types.FormTypeSF255, types.FormTypeSF252:
			forms = []types.FormType{form}
		default:
			return fmt.Errorf("unknown form %q: expected SF330, SF254, SF255, or SF252", args[0])
		}
	}

	data := st.Snapshot().FormData
	printer := observability.NewPrinter(os.Stdout)
	for _, form := range forms {
		printer.PrintProgressReport(form, progress.ComputeForm(form, data))
	}
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, _, cleanup, err := openState(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	observability.NewPrinter(os.Stdout).PrintStateSummary(st.Snapshot())
	return nil
}
