package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mateo/datagrab/archive"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive.zip>",
	Short: "Extract a zip archive",
	Long:  "Extracts a zip archive into a directory. Without --dir the directory is derived from the archive name by dropping the extension.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var extractDir string

func init() {
	extractCmd.Flags().StringVarP(&extractDir, "dir", "d", "", "Directory to extract into (default: derived from archive name)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	dir, err := archive.ExtractZip(args[0], extractDir)
	if err != nil {
		return fmt.Errorf("failed to extract archive: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted to: %s\n", dir)
	return nil
}
