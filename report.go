package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
)

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}

// renderReport writes a validation report. JSON format emits the report
// struct as-is; text format prints one block per file followed by a
// summary line.
func renderReport(w io.Writer, rep *validationReport, format string, st reportStyles) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "Reference: %s\n\n", rep.Reference)
	for _, r := range rep.Results {
		name := filepath.Base(r.File)
		switch {
		case r.SyntaxError != "":
			fmt.Fprintf(w, "%s  %s\n", st.File.Render(name), st.Fail.Render("INVALID"))
			fmt.Fprintf(w, "  %s\n", r.SyntaxError)
		case r.failed():
			fmt.Fprintf(w, "%s  %s\n", st.File.Render(name), st.Fail.Render("FAIL"))
		case len(r.Extra) > 0:
			fmt.Fprintf(w, "%s  %s\n", st.File.Render(name), st.Warn.Render("WARN"))
		default:
			fmt.Fprintf(w, "%s  %s\n", st.File.Render(name), st.OK.Render("OK"))
		}
		if len(r.Missing) > 0 {
			fmt.Fprintf(w, "  missing keys (%d):\n", len(r.Missing))
			for _, k := range r.Missing {
				fmt.Fprintf(w, "    %s\n", st.Key.Render(k))
			}
		}
		if len(r.Extra) > 0 {
			fmt.Fprintf(w, "  extra keys (%d, advisory):\n", len(r.Extra))
			for _, k := range r.Extra {
				fmt.Fprintf(w, "    %s\n", st.Key.Render(k))
			}
		}
	}

	fmt.Fprintf(w, "\nValidated %d locale files, %d with issues.\n",
		len(rep.Results), rep.issueCount())
	if rep.failed() {
		fmt.Fprintln(w, st.Fail.Render("Validation failed."))
	} else {
		fmt.Fprintln(w, st.OK.Render("All locale files are in sync with the reference."))
	}
	return nil
}
