// Package output renders the run summary and prepares clipboard text.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codesqueeze/codesqueeze/internal/tokenizer"
	"github.com/codesqueeze/codesqueeze/internal/types"
)

const (
	processedHeading       = "✓ Successfully processed files:"
	processedItemFormat    = "  • %s"
	outputHeading          = "📄 Output file:"
	outputPathFormat       = "  %s"
	sizeFormat             = "  Size: %.2f MB"
	tokensFormat           = "  Estimated tokens: %s"
	tokenFailureFormat     = "  Token estimation failed: %v"
	copiedMessage          = "✓ Successfully Copied as prompt!"
	kilobytesPerMegabyte   = 1024.0
	thousandsGroupSize     = 3
	thousandsSeparatorRune = ','
)

// BuildSummary turns a collection result into a summary, reading the finished artifact
// back to estimate tokens. A failed read is recorded, not returned.
func BuildSummary(result types.CollectionResult, counter tokenizer.Counter) types.Summary {
	summary := types.Summary{
		ProcessedFiles: result.ProcessedFiles,
		OutputPath:     result.OutputPath,
		SizeMB:         result.OutputSizeKB / kilobytesPerMegabyte,
	}
	countResult, countError := tokenizer.CountFile(counter, result.OutputPath)
	if countError != nil {
		summary.TokenEstimateError = countError
		return summary
	}
	summary.EstimatedTokens = countResult.Tokens
	return summary
}

// Reporter prints summaries with terminal styling when the writer supports it.
type Reporter struct {
	writer       io.Writer
	headingStyle lipgloss.Style
	outputStyle  lipgloss.Style
	sizeStyle    lipgloss.Style
	tokensStyle  lipgloss.Style
	warningStyle lipgloss.Style
	copiedStyle  lipgloss.Style
}

// NewReporter returns a Reporter writing to writer. Colours are dropped when writer is not a terminal.
func NewReporter(writer io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(writer)
	return &Reporter{
		writer:       writer,
		headingStyle: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		outputStyle:  renderer.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		sizeStyle:    renderer.NewStyle().Foreground(lipgloss.Color("4")),
		tokensStyle:  renderer.NewStyle().Foreground(lipgloss.Color("5")),
		warningStyle: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		copiedStyle:  renderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Render prints the processed files, output path, size and token estimate.
func (reporter *Reporter) Render(summary types.Summary) {
	fmt.Fprintln(reporter.writer)
	fmt.Fprintln(reporter.writer, reporter.headingStyle.Render(processedHeading))
	for _, processedFile := range summary.ProcessedFiles {
		fmt.Fprintf(reporter.writer, processedItemFormat+"\n", processedFile)
	}
	fmt.Fprintln(reporter.writer)
	fmt.Fprintln(reporter.writer, reporter.outputStyle.Render(outputHeading))
	fmt.Fprintf(reporter.writer, outputPathFormat+"\n", summary.OutputPath)
	fmt.Fprintln(reporter.writer, reporter.sizeStyle.Render(fmt.Sprintf(sizeFormat, summary.SizeMB)))
	if summary.TokenEstimateError != nil {
		fmt.Fprintln(reporter.writer, reporter.warningStyle.Render(fmt.Sprintf(tokenFailureFormat, summary.TokenEstimateError)))
		return
	}
	fmt.Fprintln(reporter.writer, reporter.tokensStyle.Render(fmt.Sprintf(tokensFormat, FormatThousands(summary.EstimatedTokens))))
}

// RenderCopied confirms the clipboard copy.
func (reporter *Reporter) RenderCopied() {
	fmt.Fprintln(reporter.writer)
	fmt.Fprintln(reporter.writer, reporter.copiedStyle.Render(copiedMessage))
	fmt.Fprintln(reporter.writer)
}

// FormatThousands renders value with comma group separators, e.g. 12345 as "12,345".
func FormatThousands(value int) string {
	digits := strconv.Itoa(value)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= thousandsGroupSize {
		return sign + digits
	}
	var builder strings.Builder
	leading := len(digits) % thousandsGroupSize
	if leading > 0 {
		builder.WriteString(digits[:leading])
	}
	for index := leading; index < len(digits); index += thousandsGroupSize {
		if builder.Len() > 0 {
			builder.WriteRune(thousandsSeparatorRune)
		}
		builder.WriteString(digits[index : index+thousandsGroupSize])
	}
	return sign + builder.String()
}
