package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateo/datagrab/table"
)

var loadCmd = &cobra.Command{
	Use:   "load <path-or-url>",
	Short: "Load a tabular file and print it",
	Long:  "Loads a CSV, TSV, or Excel file from a local path or an http(s) URL and prints the resulting table. URL sources are saved into the download directory first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var loadDownloadDir string

func init() {
	loadCmd.Flags().StringVarP(&loadDownloadDir, "download-dir", "d", "", "Directory for files fetched from URLs (default: ./data)")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	df, err := table.Load(cmd.Context(), args[0], &table.LoadOptions{DownloadDir: loadDownloadDir})
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}

	printTable(df)
	return nil
}
