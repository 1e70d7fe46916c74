package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

const (
	panelWidth     = 80
	unknownBlockID = "Unknown Block"
)

var (
	errText     = color.New(color.FgRed, color.Bold).SprintFunc()
	warnText    = color.New(color.FgYellow, color.Bold).SprintFunc()
	okText      = color.New(color.FgGreen).SprintFunc()
	boldText    = color.New(color.Bold).SprintFunc()
	italicText  = color.New(color.Italic).SprintFunc()
	bannerText  = color.New(color.FgCyan, color.Bold).SprintFunc()
	altTitle    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	sugTitle    = color.New(color.FgGreen, color.Bold).SprintFunc()
	sectionText = color.New(color.Bold, color.Underline).SprintFunc()
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Reporter renders analysis reports to a terminal-like sink and persists
// them as JSON. The writer is injected once at construction so tests can
// substitute a capturing buffer.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a reporter writing to the given sink, defaulting to
// os.Stdout when nil.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Render writes the human-readable form of report. A nil report produces a
// single error notice. Render never fails: every problem ends in a styled
// message on the sink, not an error to the caller.
//
// The verbose flag is accepted for interface stability but does not change
// the rendering today.
func (r *Reporter) Render(report *domain.AnalysisReport, verbose bool) {
	_ = verbose

	if report == nil {
		fmt.Fprintln(r.writer, errText("No analysis report data to display."))
		return
	}

	fmt.Fprintln(r.writer, bannerText(centerLine("DeltaOptima Analysis Report", panelWidth)))

	requestID := report.RequestID
	if requestID == "" {
		requestID = "N/A"
	}
	assessment := report.OverallAssessment
	if assessment == "" {
		assessment = "No overall assessment provided."
	}

	fmt.Fprintf(r.writer, "\n%s %s\n", boldText("Request ID:"), requestID)
	fmt.Fprintf(r.writer, "\n%s\n%s\n", boldText("Overall Assessment:"), assessment)

	if report.AlternativeApproach != nil {
		r.renderAlternativeApproach(report.AlternativeApproach)
	}

	if report.CodeBlockSuggestions != nil {
		if len(report.CodeBlockSuggestions) == 0 {
			fmt.Fprintf(r.writer, "\n%s\n", italicText("No specific code block suggestions were provided."))
		} else {
			fmt.Fprintf(r.writer, "\n%s\n", sectionText("--- Code Block Specific Suggestions ---"))
			for i, sug := range report.CodeBlockSuggestions {
				r.renderSuggestion(i+1, sug)
			}
		}
	}

	if report.CommonInefficiencies != nil {
		if len(report.CommonInefficiencies) == 0 {
			fmt.Fprintf(r.writer, "\n%s\n", italicText("No common inefficiencies were highlighted in this report."))
		} else {
			fmt.Fprintf(r.writer, "\n%s\n", sectionText("--- Common Inefficiencies Observed ---"))
			for _, item := range report.CommonInefficiencies {
				fmt.Fprintf(r.writer, "- %s\n", item)
			}
		}
	}

	fmt.Fprintf(r.writer, "\n%s\n", strings.Repeat("=", panelWidth))
}

func (r *Reporter) renderAlternativeApproach(alt *domain.AlternativeApproach) {
	title := alt.Title
	if title == "" {
		title = "Alternative High-Level Approach"
	}

	var body strings.Builder
	body.WriteString(boldText("Description:") + "\n")
	body.WriteString(alt.Description + "\n\n")
	body.WriteString(boldText("Suggested Overview:") + "\n")
	for _, step := range alt.Overview {
		body.WriteString("- " + step + "\n")
	}
	body.WriteString("\n" + boldText("Estimated Benefits:") + "\n")
	for _, benefit := range alt.Benefits {
		body.WriteString("- " + benefit + "\n")
	}

	r.renderPanel(altTitle(title), body.String())
}

func (r *Reporter) renderSuggestion(index int, sug domain.CodeBlockSuggestion) {
	blockID := sug.BlockID
	if blockID == "" {
		blockID = unknownBlockID
	}
	title := fmt.Sprintf("Suggestion #%d for Block: '%s'", index, blockID)

	var body strings.Builder
	body.WriteString(boldText("Inefficiency:") + " " + orNA(sug.Summary) + "\n\n")
	body.WriteString(boldText("Explanation:") + "\n" + orNA(sug.Explanation) + "\n\n")
	if sug.Snippet != "" {
		body.WriteString(boldText("Problematic Snippet Context:") + "\n")
		body.WriteString("```\n" + sug.Snippet + "\n```\n\n")
	}
	body.WriteString(boldText("Suggested Improvement (Conceptual):") + "\n" + orNA(sug.Improvement) + "\n")
	if sug.ImpactLevel != "" {
		body.WriteString("\n" + boldText("Potential Impact:") + " " + sug.ImpactLevel + "\n")
	}

	r.renderPanel(sugTitle(title), body.String())
}

// renderPanel draws a bordered box around body with the title embedded in the
// top border. Padding accounts for ANSI color codes in the content.
func (r *Reporter) renderPanel(title, body string) {
	inner := panelWidth - 4

	top := "╭─ " + title + " "
	fill := panelWidth - visibleLen(top) - 1
	if fill < 0 {
		fill = 0
	}
	fmt.Fprintf(r.writer, "\n%s%s╮\n", top, strings.Repeat("─", fill))

	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		for _, wrapped := range wrapLine(line, inner) {
			fmt.Fprintf(r.writer, "│ %s │\n", padRight(wrapped, inner))
		}
	}

	fmt.Fprintf(r.writer, "╰%s╯\n", strings.Repeat("─", panelWidth-2))
}

// stripANSI removes ANSI escape codes to get actual visible length.
func stripANSI(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

func visibleLen(str string) int {
	return len([]rune(stripANSI(str)))
}

// padRight pads a colored string so it displays at the specified width.
func padRight(str string, width int) string {
	if visible := visibleLen(str); visible < width {
		return str + strings.Repeat(" ", width-visible)
	}
	return str
}

func centerLine(str string, width int) string {
	pad := (width - visibleLen(str)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + str
}

// wrapLine splits a line on spaces so no segment is visibly wider than width.
// Segments without a usable break point are left long rather than cut inside
// an ANSI sequence.
func wrapLine(line string, width int) []string {
	if visibleLen(line) <= width {
		return []string{line}
	}

	var lines []string
	words := strings.Split(line, " ")
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case visibleLen(current)+1+visibleLen(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Save persists report as pretty-printed UTF-8 JSON at outputPath. Like
// Render it never returns an error: missing input and I/O failures all end
// in a styled notice on the sink.
func (r *Reporter) Save(report *domain.AnalysisReport, outputPath string) {
	if report == nil {
		fmt.Fprintln(r.writer, errText("No results to save."))
		return
	}
	if outputPath == "" {
		fmt.Fprintln(r.writer, warnText("Output file path not provided, skipping save."))
		return
	}

	f, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintln(r.writer, errText(fmt.Sprintf("Error saving results to %s: %v", outputPath, err)))
		return
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep non-ASCII and <>& literal in the file.
	enc.SetEscapeHTML(false)

	if err := enc.Encode(adapters.MapDomainReportToAPI(report)); err != nil {
		_ = f.Close()
		fmt.Fprintln(r.writer, errText(fmt.Sprintf("An unexpected error occurred while saving results: %v", err)))
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(r.writer, errText(fmt.Sprintf("Error saving results to %s: %v", outputPath, err)))
		return
	}

	fmt.Fprintf(r.writer, "\n%s\n", okText("Analysis report successfully saved to: "+outputPath))
}
