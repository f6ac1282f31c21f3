// Package main provides the CLI entry point for invoicegen.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/render"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/server"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/store"
)

var (
	outputDir string
	storePath string
	fontPath  string
	logoPath  string
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:   "invoicegen",
		Short: "Generate discharge invoice PDFs from hospital spreadsheet exports",
		Long: `invoicegen extracts structured invoice records from semi-structured
hospital discharge spreadsheets and renders them as formatted PDF
invoices, keeping a local record store of generated documents.`,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [workbook.xlsx]",
		Short: "Process every sheet of a workbook into PDF invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], log)
		},
	}
	generateCmd.Flags().StringVarP(&outputDir, "out", "o", "invoices", "Directory for generated PDFs")
	generateCmd.Flags().StringVar(&storePath, "store", "invoices_db.json", "Path of the JSON record store")
	generateCmd.Flags().StringVar(&fontPath, "font", "", "Unicode TTF font path (probed when empty)")
	generateCmd.Flags().StringVar(&logoPath, "logo", "Picture1.png", "Logo image for the invoice header")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload/dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(server.LoadConfig(), log).Run()
		},
	}

	rootCmd.AddCommand(generateCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(inputPath string, log zerolog.Logger) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	proc := &invoicegen.Processor{
		Opts:      invoicegen.DefaultOptions(),
		Renderer:  render.NewRenderer(render.ResolveFont(fontPath), logoPath, log),
		Store:     store.Open(storePath, log),
		OutputDir: outputDir,
		Log:       log,
	}

	summary, err := proc.ProcessWorkbook(inputPath)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	log.Info().
		Int("processed", summary.Processed).
		Strs("skipped", summary.Skipped).
		Strs("failed", summary.Failed).
		Msg("workbook complete")
	return nil
}
