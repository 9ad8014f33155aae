// Package main provides the datagrab CLI for fetching and inspecting
// datasets.
package main

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mateo/datagrab/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "datagrab",
	Short: "Dataset acquisition helper",
	Long:  "datagrab downloads datasets from Kaggle or plain URLs, extracts archives, and loads tabular files as dataframes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// previewRows caps how many rows printTable shows.
const previewRows = 10

func printTable(df dataframe.DataFrame) {
	if df.Nrow() <= previewRows {
		_, _ = fmt.Fprintln(os.Stdout, df)
		return
	}
	idx := make([]int, previewRows)
	for i := range idx {
		idx[i] = i
	}
	_, _ = fmt.Fprintln(os.Stdout, df.Subset(idx))
	_, _ = fmt.Fprintf(os.Stdout, "(showing first %d of %d rows)\n", previewRows, df.Nrow())
}
