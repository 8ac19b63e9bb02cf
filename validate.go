package main

import "fmt"

// fileResult is the validation outcome for one candidate locale file.
// Exactly one of SyntaxError or the key lists is meaningful: a file
// that does not parse gets no diff.
type fileResult struct {
	File        string   `json:"file"`
	Locale      string   `json:"locale"`
	SyntaxError string   `json:"syntaxError,omitempty"`
	Missing     []string `json:"missing,omitempty"`
	Extra       []string `json:"extra,omitempty"`
}

// failed reports whether this file fails the run. Extra keys alone are
// advisory and never fail.
func (r fileResult) failed() bool {
	return r.SyntaxError != "" || len(r.Missing) > 0
}

// hasIssues additionally counts advisory extra keys.
func (r fileResult) hasIssues() bool {
	return r.failed() || len(r.Extra) > 0
}

// validationReport aggregates the results for one run over all
// candidate locale files.
type validationReport struct {
	Reference string       `json:"reference"`
	Results   []fileResult `json:"results"`
}

func (rep *validationReport) failed() bool {
	for _, r := range rep.Results {
		if r.failed() {
			return true
		}
	}
	return false
}

func (rep *validationReport) issueCount() int {
	n := 0
	for _, r := range rep.Results {
		if r.hasIssues() {
			n++
		}
	}
	return n
}

// validateLocales checks every candidate file against the reference
// file. A reference that fails to parse aborts the run with an error
// before any candidate is touched. Candidate parse failures are
// recorded per file and do not stop the remaining files.
func validateLocales(refPath string, candidates []string) (*validationReport, error) {
	refDoc, err := loadLocale(refPath)
	if err != nil {
		return nil, fmt.Errorf("reference %s is invalid: %w", refPath, err)
	}
	refKeys := extractKeys(refDoc)

	rep := &validationReport{Reference: refPath}
	for _, path := range candidates {
		result := fileResult{File: path, Locale: localeName(path)}
		doc, err := loadLocale(path)
		if err != nil {
			result.SyntaxError = err.Error()
		} else {
			d := diffKeys(refKeys, extractKeys(doc))
			result.Missing = d.Missing
			result.Extra = d.Extra
		}
		rep.Results = append(rep.Results, result)
	}
	return rep, nil
}
