package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrymomot/langswitch/pkg/locale"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

func cmdList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(out)
	format := fs.String("format", formatTable, "output format: table, json or csv")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return printLanguages(out, cfg.Registry(), *format)
}

// printLanguages writes the registry in the requested format. Only the table
// format carries the configuration header, so json and csv stay machine readable.
func printLanguages(out io.Writer, reg *locale.Registry, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			DefaultLanguage  string            `json:"default_language"`
			FallbackLanguage string            `json:"fallback_language"`
			Languages        []locale.Language `json:"languages"`
		}{reg.Default(), reg.Fallback(), reg.Languages()})

	case formatCSV:
		w := csv.NewWriter(out)
		if err := w.Write([]string{"code", "name"}); err != nil {
			return err
		}
		for _, lang := range reg.Languages() {
			if err := w.Write([]string{lang.Code, lang.Name}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case formatTable:
		fmt.Fprintln(out, "Language Switcher Configuration")
		fmt.Fprintf(out, "Default Language:  %s\n", reg.Default())
		fmt.Fprintf(out, "Fallback Language: %s\n\n", reg.Fallback())

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tNAME\tDEFAULT\tFALLBACK")
		for _, lang := range reg.Languages() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lang.Code, lang.Name, mark(lang.IsDefault), mark(lang.IsFallback))
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown format %q: must be %s, %s or %s", format, formatTable, formatJSON, formatCSV)
	}
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
