package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/config"
	"github.com/dgallion1/docdiff/internal/export"
	"github.com/dgallion1/docdiff/internal/pipeline"
)

// report is the machine-readable output of the compare command.
type report struct {
	DocumentA string          `json:"document_a" yaml:"document_a"`
	DocumentB string          `json:"document_b" yaml:"document_b"`
	Summary   compare.Summary `json:"summary" yaml:"summary"`
	ItemsA    []string        `json:"items_a" yaml:"items_a"`
	ItemsB    []string        `json:"items_b" yaml:"items_b"`
	Rows      []compare.Row   `json:"rows" yaml:"rows"`
}

func newCompareCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare OLD NEW",
		Short: "Compare the services section of two documents",
		Long: `Compare extracts the lines between the "Serviços" header and the
"Mão de obra" header of each document and classifies them as kept, removed
(only in OLD) or added (only in NEW).

The table can also be written to CSV (';' separated, UTF-8 with BOM),
XLSX or PDF.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, v, args[0], args[1])
		},
	}

	cmd.Flags().String("csv", "", "write the comparison table as CSV to this path")
	cmd.Flags().String("xlsx", "", "write the comparison table as XLSX to this path")
	cmd.Flags().String("pdf", "", "write a PDF report to this path")
	cmd.Flags().StringP("output", "o", "table", "stdout format: table, json or yaml")
	cmd.Flags().Bool("pdftotext", true, "fall back to the pdftotext binary when PDF parsing fails")

	return cmd
}

func runCompare(cmd *cobra.Command, v *viper.Viper, pathA, pathB string) error {
	output := strings.ToLower(v.GetString("output"))
	switch output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
	}

	docA, err := readDocument(pathA)
	if err != nil {
		return err
	}
	docB, err := readDocument(pathB)
	if err != nil {
		return err
	}

	log := newLogger(v.GetBool("verbose"), cmd.ErrOrStderr())
	svc := pipeline.NewService(config.Config{
		ResultTTL:            time.Hour,
		CleanupInterval:      time.Hour,
		StatsWindow:          time.Hour,
		PDFFallbackPdftotext: v.GetBool("pdftotext"),
	}, log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rec, err := svc.Compare(ctx, docA, docB)
	if err != nil {
		return err
	}

	for _, f := range export.Formats {
		path := v.GetString(string(f))
		if path == "" {
			continue
		}
		if err := writeExport(path, f, rec); err != nil {
			return err
		}
		log.Info("wrote export", "format", f, "path", path)
	}

	out := cmd.OutOrStdout()
	rep := report{
		DocumentA: rec.DocumentA.Filename,
		DocumentB: rec.DocumentB.Filename,
		Summary:   rec.Comparison.Summary,
		ItemsA:    rec.Comparison.ItemsA,
		ItemsB:    rec.Comparison.ItemsB,
		Rows:      rec.Rows(),
	}
	switch output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	printSummary(out, rep.Summary)
	return printTable(out, rep.Rows)
}

func readDocument(path string) (pipeline.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return pipeline.Document{Filename: filepath.Base(path), Data: data}, nil
}

func writeExport(path string, f export.Format, rec *pipeline.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(file, f, rec.Rows(), rec.Comparison.Summary); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

func printSummary(w io.Writer, s compare.Summary) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Resumo")
	fmt.Fprintf(w, "- Serviços no documento 1: %d\n", s.ItemsA)
	fmt.Fprintf(w, "- Serviços no documento 2: %d\n", s.ItemsB)
	fmt.Fprintf(w, "- Mantidos: %s\n", color.New(color.FgCyan).Sprint(s.Kept))
	fmt.Fprintf(w, "- Removidos: %s\n", color.New(color.FgRed).Sprint(s.Removed))
	fmt.Fprintf(w, "- Incluídos: %s\n", color.New(color.FgGreen).Sprint(s.Added))
	if s.Empty() {
		color.New(color.FgYellow).Fprintln(w, "Nenhuma seção de serviços encontrada.")
	}
	fmt.Fprintln(w)
}

func printTable(w io.Writer, rows []compare.Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(compare.Header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Cells(), "\t"))
	}
	return tw.Flush()
}
