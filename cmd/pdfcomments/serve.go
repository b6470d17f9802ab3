package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/pdfcomments-go/internal/server"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/document"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an upload form that returns comments.xlsx",
	Long: `Serve starts an HTTP server with a PDF upload form. Submitting the form
runs the same extraction as the extract command and downloads the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(server.Config{
			Addr:      viper.GetString("addr"),
			SheetName: viper.GetString("sheet"),
			Options:   extractOptions(),
		}, document.NewPDF(), nil)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	bindFlag("addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
