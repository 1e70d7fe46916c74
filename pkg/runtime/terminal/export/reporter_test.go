package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/api"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newCapturingReporter() (*Reporter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewReporter(buf), buf
}

func fullReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		RequestID:         "req-42",
		OverallAssessment: "Batch ETL with several shuffle-heavy steps.",
		AlternativeApproach: &domain.AlternativeApproach{
			Description: "Move to incremental processing.",
			Overview:    []string{"Introduce Delta Live Tables", "Partition by ingestion date"},
			Benefits:    []string{"Latency from hours to minutes"},
		},
		CodeBlockSuggestions: []domain.CodeBlockSuggestion{
			{
				BlockID:     "Cell 3",
				Snippet:     "df.repartition(1).write.parquet(path)",
				Summary:     "Single-partition write",
				Explanation: "Forces all data through one task.",
				Improvement: "Let Spark choose the partitioning.",
				ImpactLevel: "High",
			},
			{
				Summary:     "collect() on the driver",
				Explanation: "Pulls the full dataset onto the driver.",
				Improvement: "Aggregate inside Spark.",
			},
		},
		CommonInefficiencies: []string{"Frequent use of collect()", "repartition(1) before writes"},
	}
}

func TestRender_NilReport(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(nil, false)

	assert.Equal(t, "No analysis report data to display.\n", buf.String())
}

func TestRender_MinimalReport(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(&domain.AnalysisReport{RequestID: "r1", OverallAssessment: "OK"}, false)
	out := buf.String()

	assert.Contains(t, out, "Request ID: r1")
	assert.Contains(t, out, "Overall Assessment:\nOK")
	assert.NotContains(t, out, "Alternative")
	assert.NotContains(t, out, "Suggestion #")
	assert.NotContains(t, out, "suggestions")
	assert.NotContains(t, out, "Inefficiencies")
	assert.NotContains(t, out, "inefficiencies")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", panelWidth)+"\n"))
}

func TestRender_Placeholders(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(&domain.AnalysisReport{}, false)
	out := buf.String()

	assert.Contains(t, out, "Request ID: N/A")
	assert.Contains(t, out, "No overall assessment provided.")
}

func TestRender_AlternativeApproach(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(fullReport(), false)
	out := buf.String()

	// Title field was empty, so the default panel title is used.
	assert.Contains(t, out, "Alternative High-Level Approach")
	assert.Contains(t, out, "Move to incremental processing.")
	assert.Contains(t, out, "- Introduce Delta Live Tables")
	assert.Contains(t, out, "- Latency from hours to minutes")
}

func TestRender_SuggestionPanels(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(fullReport(), false)
	out := buf.String()

	assert.Contains(t, out, "--- Code Block Specific Suggestions ---")
	assert.Contains(t, out, "Suggestion #1 for Block: 'Cell 3'")
	assert.Contains(t, out, "Suggestion #2 for Block: 'Unknown Block'")
	assert.Equal(t, 2, strings.Count(out, "Suggestion #"))

	// Snippet fence only for the suggestion that has one.
	assert.Contains(t, out, "df.repartition(1).write.parquet(path)")
	assert.Equal(t, 2, strings.Count(out, "```"))
	assert.Contains(t, out, "Potential Impact: High")
}

func TestRender_EmptySuggestions(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(&domain.AnalysisReport{
		RequestID:            "r1",
		CodeBlockSuggestions: []domain.CodeBlockSuggestion{},
	}, false)
	out := buf.String()

	assert.Contains(t, out, "No specific code block suggestions were provided.")
	assert.NotContains(t, out, "Suggestion #")
	assert.NotContains(t, out, "--- Code Block Specific Suggestions ---")
}

func TestRender_CommonInefficiencies(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(fullReport(), false)
	out := buf.String()

	assert.Contains(t, out, "--- Common Inefficiencies Observed ---")
	assert.Contains(t, out, "- Frequent use of collect()")
	assert.Contains(t, out, "- repartition(1) before writes")
}

func TestRender_EmptyCommonInefficiencies(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Render(&domain.AnalysisReport{CommonInefficiencies: []string{}}, false)
	out := buf.String()

	assert.Contains(t, out, "No common inefficiencies were highlighted in this report.")
	assert.NotContains(t, out, "--- Common Inefficiencies Observed ---")
}

func TestRender_VerboseDoesNotChangeOutput(t *testing.T) {
	quiet, quietBuf := newCapturingReporter()
	verbose, verboseBuf := newCapturingReporter()

	quiet.Render(fullReport(), false)
	verbose.Render(fullReport(), true)

	assert.Equal(t, quietBuf.String(), verboseBuf.String())
}

func TestSave_NilReport(t *testing.T) {
	reporter, buf := newCapturingReporter()
	path := filepath.Join(t.TempDir(), "out.json")

	reporter.Save(nil, path)

	assert.Equal(t, "No results to save.\n", buf.String())
	assert.NoFileExists(t, path)
}

func TestSave_EmptyPath(t *testing.T) {
	reporter, buf := newCapturingReporter()

	reporter.Save(fullReport(), "")

	assert.Equal(t, "Output file path not provided, skipping save.\n", buf.String())
}

func TestSave_RoundTrip(t *testing.T) {
	reporter, buf := newCapturingReporter()
	path := filepath.Join(t.TempDir(), "out.json")
	report := fullReport()

	reporter.Save(report, path)

	assert.Contains(t, buf.String(), "Analysis report successfully saved to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  \"request_id\": \"req-42\"")

	var parsed api.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, report, adapters.MapAPIReportToDomain(&parsed))
}

func TestSave_NonASCIIPreserved(t *testing.T) {
	reporter, _ := newCapturingReporter()
	path := filepath.Join(t.TempDir(), "out.json")

	reporter.Save(&domain.AnalysisReport{OverallAssessment: "größer & <schneller>"}, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "größer & <schneller>")
	assert.NotContains(t, string(data), `\u`)
}

func TestSave_InvalidPath(t *testing.T) {
	reporter, buf := newCapturingReporter()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

	reporter.Save(fullReport(), path)

	assert.Contains(t, buf.String(), "Error saving results to "+path)
	assert.NoFileExists(t, path)
}

func TestPadRightHandlesColorCodes(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	colored := color.New(color.FgGreen).Sprint("ok")
	padded := padRight(colored, 10)
	assert.Equal(t, 10, visibleLen(padded))
}

func TestWrapLine(t *testing.T) {
	lines := wrapLine("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	// A single over-long token is left intact.
	assert.Equal(t, []string{"abcdefghijkl"}, wrapLine("abcdefghijkl", 5))
}
