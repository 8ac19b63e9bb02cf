package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refContent = `{"a": "x", "b": {"c": "y"}}`

func TestValidateLocalesAllInSync(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx", "b": {"c": "fy"}}`)

	rep, err := validateLocales(ref, []string{fr})
	require.NoError(t, err)
	assert.False(t, rep.failed())
	assert.Equal(t, 0, rep.issueCount())
	require.Len(t, rep.Results, 1)
	assert.Equal(t, "fr", rep.Results[0].Locale)
	assert.Empty(t, rep.Results[0].Missing)
	assert.Empty(t, rep.Results[0].Extra)
}

func TestValidateLocalesMissingKeysFail(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx"}`)

	rep, err := validateLocales(ref, []string{fr})
	require.NoError(t, err)
	assert.True(t, rep.failed())
	require.Len(t, rep.Results, 1)
	assert.Equal(t, []string{"b", "b.c"}, rep.Results[0].Missing)
	assert.Empty(t, rep.Results[0].Extra)
}

func TestValidateLocalesExtraKeysAreAdvisory(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx", "b": {"c": "fy"}, "d": "z"}`)

	rep, err := validateLocales(ref, []string{fr})
	require.NoError(t, err)
	assert.False(t, rep.failed(), "extra keys alone never fail the run")
	assert.Equal(t, 1, rep.issueCount())
	require.Len(t, rep.Results, 1)
	assert.Empty(t, rep.Results[0].Missing)
	assert.Equal(t, []string{"d"}, rep.Results[0].Extra)
}

func TestValidateLocalesInvalidCandidate(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	de := writeFile(t, dir, "de.json", `{"a": `)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx", "b": {"c": "fy"}}`)

	rep, err := validateLocales(ref, []string{de, fr})
	require.NoError(t, err)
	assert.True(t, rep.failed())
	require.Len(t, rep.Results, 2)

	// The broken file is recorded without a diff.
	assert.NotEmpty(t, rep.Results[0].SyntaxError)
	assert.Empty(t, rep.Results[0].Missing)
	assert.Empty(t, rep.Results[0].Extra)

	// The other candidate is still evaluated.
	assert.Empty(t, rep.Results[1].SyntaxError)
	assert.False(t, rep.Results[1].failed())
}

func TestValidateLocalesInvalidReferenceAborts(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", `not json`)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx"}`)

	rep, err := validateLocales(ref, []string{fr})
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.Contains(t, err.Error(), "en.json")
}

func TestValidateLocalesMixedFormats(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	de := writeFile(t, dir, "de.yaml", "a: dx\nb:\n  c: dy\n")

	rep, err := validateLocales(ref, []string{de})
	require.NoError(t, err)
	assert.False(t, rep.failed())
	assert.Equal(t, "de", rep.Results[0].Locale)
}

func TestValidateLocalesNoCandidates(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)

	rep, err := validateLocales(ref, nil)
	require.NoError(t, err)
	assert.False(t, rep.failed())
	assert.Empty(t, rep.Results)
}

func TestRenderReportText(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx"}`)
	de := writeFile(t, dir, "de.json", `{"a": "dx", "b": {"c": "dy"}, "d": "z"}`)

	rep, err := validateLocales(ref, []string{de, fr})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, rep, "text", newReportStyles(false)))
	out := buf.String()

	assert.Contains(t, out, "fr.json  FAIL")
	assert.Contains(t, out, "missing keys (2):")
	assert.Contains(t, out, "de.json  WARN")
	assert.Contains(t, out, "extra keys (1, advisory):")
	assert.Contains(t, out, "Validated 2 locale files, 2 with issues.")
	assert.Contains(t, out, "Validation failed.")
}

func TestRenderReportJSON(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "en.json", refContent)
	fr := writeFile(t, dir, "fr.json", `{"a": "fx"}`)

	rep, err := validateLocales(ref, []string{fr})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderReport(&buf, rep, "json", newReportStyles(false)))

	var decoded validationReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, []string{"b", "b.c"}, decoded.Results[0].Missing)
}
