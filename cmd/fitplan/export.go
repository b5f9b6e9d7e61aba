// ABOUTME: CLI command for exporting the plan plus weekly tracking snapshot.
// ABOUTME: Supports JSON and YAML output, to stdout or a file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan and current week's tracking snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		serializer := export.NewSerializer(gen, trk)
		doc, err := serializer.Build(flagUser, time.Now())
		if err != nil {
			return err
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = doc.JSON()
		case "yaml":
			data, err = doc.YAML()
		default:
			return fmt.Errorf("unknown format: %q (use json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("serialize export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
