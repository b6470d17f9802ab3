// Package main provides the CLI entry point for pdfcomments.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/output"
)

var rootCmd = &cobra.Command{
	Use:   "pdfcomments",
	Short: "Export PDF review comments to a spreadsheet",
	Long: `pdfcomments reads the annotation comments of a batch of PDF proofs,
classifies each comment, tags it with metadata parsed from the file name
(banner, week, PRF number), and writes everything to comments.xlsx.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfcomments.yaml or ~/.config/pdfcomments/pdfcomments.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log per-file progress")
	rootCmd.PersistentFlags().String("date", "", "upload date stamped on every row (default: today)")
	rootCmd.PersistentFlags().String("date-format", pdfcomments.DefaultDateFormat, "Go time layout for the default date")
	rootCmd.PersistentFlags().String("sheet", output.DefaultSheetName, "worksheet name")
	rootCmd.PersistentFlags().Bool("keep-going", false, "record unreadable PDFs as rows instead of aborting the batch")

	bindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	bindFlag("date", rootCmd.PersistentFlags().Lookup("date"))
	bindFlag("date_format", rootCmd.PersistentFlags().Lookup("date-format"))
	bindFlag("sheet", rootCmd.PersistentFlags().Lookup("sheet"))
	bindFlag("keep_going", rootCmd.PersistentFlags().Lookup("keep-going"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfcomments")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfcomments"))
		}
	}

	viper.SetEnvPrefix("PDFCOMMENTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// extractOptions builds extraction options from flags, config, and env.
func extractOptions() pdfcomments.Options {
	opts := pdfcomments.DefaultOptions()
	if layout := viper.GetString("date_format"); layout != "" {
		opts.DateFormat = layout
	}
	if viper.GetBool("keep_going") {
		opts.FailureMode = pdfcomments.KeepGoing
	}
	opts.Logger = slog.Default()
	return opts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
