package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/document"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/output"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files or directories...]",
	Short: "Extract annotation comments from PDF files into a spreadsheet",
	Long: `Extract reads every annotation of the given PDF files (directories
contribute their *.pdf entries) and writes one spreadsheet row per comment.
Files are processed in the order given; a blank row follows each file.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("output", "o", output.DefaultFileName, "output workbook path")
	bindFlag("output", extractCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	sources, err := pdfcomments.LoadSources(args)
	if err != nil {
		return err
	}

	opts := extractOptions()
	batch := models.UploadBatch{
		Files: sources,
		Date:  opts.ResolveDate(viper.GetString("date")),
	}
	slog.Info(pdfcomments.FileCount(len(sources)), "date", batch.Date)

	records, err := pdfcomments.Extract(batch, document.NewPDF(), opts)
	if errors.Is(err, pdfcomments.ErrNoFilesSelected) {
		return errors.New("please provide at least one PDF file")
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	outputPath := viper.GetString("output")
	if err := output.WriteXLSX(records, outputPath, viper.GetString("sheet")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(records), outputPath)
	return nil
}
