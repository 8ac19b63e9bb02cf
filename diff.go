package main

// diffResult holds the outcome of comparing one candidate key set
// against the reference key set. Missing keys are fatal, extra keys are
// advisory.
type diffResult struct {
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// diffKeys compares a candidate key set against the reference key set.
// Missing keys come out in the reference's iteration order, extra keys
// in the candidate's. Comparison is exact string equality on the dotted
// paths; no normalization of any kind.
func diffKeys(reference, candidate *keySet) diffResult {
	var result diffResult
	for _, k := range reference.keys() {
		if !candidate.has(k) {
			result.Missing = append(result.Missing, k)
		}
	}
	for _, k := range candidate.keys() {
		if !reference.has(k) {
			result.Extra = append(result.Extra, k)
		}
	}
	return result
}
