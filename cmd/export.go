package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/timegridhq/timegrid/config"
	"github.com/timegridhq/timegrid/infra/storage"
	"github.com/timegridhq/timegrid/pkg/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <schedule-id>",
	Short: "Export one schedule's weekly sessions",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, defaults to stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	schedules, err := store.Load(context.Background())
	if err != nil {
		return err
	}

	id := args[0]
	for _, s := range schedules {
		if s.ID != id {
			continue
		}
		var w io.Writer = os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		switch exportFormat {
		case "csv":
			return export.WriteCSV(w, s)
		case "json":
			return export.WriteJSON(w, s)
		default:
			return fmt.Errorf("unsupported format: %s", exportFormat)
		}
	}
	return fmt.Errorf("unknown schedule %q", id)
}
