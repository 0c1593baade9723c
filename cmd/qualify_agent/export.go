package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ae-qualify/internal/export"
	"github.com/jonathan/ae-qualify/internal/observability"
	"github.com/jonathan/ae-qualify/internal/types"
)

var (
	exportAll  bool
	exportHTML bool
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export [form]",
	Short: "Render a form to PDF",
	Long:  "Render one qualification form (or all four with --all) to PDF through headless Chrome. Requires Chrome/Chromium on the system; use --html to write the printable HTML instead.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export all four forms")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Write printable HTML instead of PDF")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	if !exportAll && len(args) == 0 {
		return fmt.Errorf("provide a form (SF330, SF254, SF255, SF252) or --all")
	}

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
	if !exportAll {
		form := types.FormType(args[0])
		switch form {
		case types.FormTypeSF330, types.FormTypeSF254, types.FormTypeSF255, types.FormTypeSF252:
			forms = []types.FormType{form}
		default:
			return fmt.Errorf("unknown form %q: expected SF330, SF254, SF255, or SF252", args[0])
		}
	}

	if err := os.MkdirAll(exportOut, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data := st.Snapshot().FormData
	printer := observability.NewPrinter(os.Stdout)

	g, gctx := errgroup.WithContext(ctx)
	for _, form := range forms {
		g.Go(func() error {
			fileName, size, err := exportOne(gctx, form, data, cfg.Verbose)
			if err != nil {
				return fmt.Errorf("export %s: %w", form, err)
			}
			printer.PrintExportResult(fileName, size)
			return nil
		})
	}
	return g.Wait()
}

func exportOne(ctx context.Context, form types.FormType, data types.UnifiedFormData, verbose bool) (string, int, error) {
	if exportHTML {
		snap, err := export.Take(form, data)
		if err != nil {
			return "", 0, err
		}
		html, err := export.RenderHTML(snap)
		if err != nil {
			return "", 0, err
		}
		fileName := strings.TrimSuffix(snap.FileName(), ".pdf") + ".html"
		path := filepath.Join(exportOut, fileName)
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			return "", 0, err
		}
		return path, len(html), nil
	}

	pdf, fileName, err := export.ToPDF(ctx, form, data, export.DefaultPrintTimeout, verbose)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(exportOut, fileName)
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return "", 0, err
	}
	return path, len(pdf), nil
}
