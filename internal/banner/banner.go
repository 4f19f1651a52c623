// Package banner prints the decorative startup banner. Nothing in the collection
// pipeline depends on it; the CLI skips it with --no-banner.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	defaultWidth        = 80
	borderPadding       = 4
	fallbackInnerWidth  = 50
	separatorRune       = "◆"
	maxSeparatorWidth   = 40
	warningBannerFailed = "banner rendering failed"
)

var titleArt = []string{
	`   ______          __     _____                                  `,
	`  / ____/___  ____/ /__  / ___/____ ___  _____  ___  ____  ___   `,
	` / /   / __ \/ __  / _ \ \__ \/ __ '/ / / / _ \/ _ \/_  / / _ \  `,
	`/ /___/ /_/ / /_/ /  __/___/ / /_/ / /_/ /  __/  __/ / /_/  __/  `,
	`\____/\____/\__,_/\___//____/\__, /\__,_/\___/\___/ /___/\___/   `,
	`                               /_/                               `,
}

var taglines = []string{
	"🚀 Transform Your Codebase into AI-Ready Format 🚀",
	"💡 One file, one line, ready for any chat assistant 💡",
}

var gradientColors = []lipgloss.Color{"81", "75", "69", "63"}

// Print writes the banner to writer sized to the terminal width. Failures, including
// panics, are logged and swallowed.
func Print(writer io.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Warn(warningBannerFailed, zap.Any("panic", recovered))
		}
	}()
	renderer := lipgloss.NewRenderer(writer)
	if _, writeError := io.WriteString(writer, Render(TerminalWidth(writer), renderer)); writeError != nil {
		logger.Warn(warningBannerFailed, zap.Error(writeError))
	}
}

// TerminalWidth returns the column count of writer when it is a terminal, otherwise 80.
func TerminalWidth(writer io.Writer) int {
	file, isFile := writer.(*os.File)
	if !isFile || !term.IsTerminal(int(file.Fd())) {
		return defaultWidth
	}
	width, _, sizeError := term.GetSize(int(file.Fd()))
	if sizeError != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Render returns the banner for a terminal of the given width. Narrow terminals get a
// compact fallback box.
func Render(width int, renderer *lipgloss.Renderer) string {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	innerWidth := width - borderPadding
	if innerWidth < widestLine() {
		return renderFallback()
	}

	borderStyle := renderer.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	accentStyle := renderer.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)

	side := borderStyle.Render("║")
	blankRow := side + strings.Repeat(" ", width-2) + side
	row := func(text string, style lipgloss.Style) string {
		return side + " " + style.Render(center(text, innerWidth)) + " " + side
	}

	var lines []string
	lines = append(lines, "", borderStyle.Render("╔"+strings.Repeat("═", width-2)+"╗"), blankRow)
	for lineIndex, artLine := range titleArt {
		if strings.TrimSpace(artLine) == "" {
			continue
		}
		gradientStyle := renderer.NewStyle().Foreground(gradientColors[lineIndex%len(gradientColors)]).Bold(true)
		lines = append(lines, row(strings.TrimRight(artLine, " "), gradientStyle))
	}
	separatorWidth := min(maxSeparatorWidth, width-10)
	lines = append(lines, row(strings.Repeat(separatorRune, separatorWidth), accentStyle))
	for _, tagline := range taglines {
		lines = append(lines, row(tagline, accentStyle))
	}
	lines = append(lines, blankRow, borderStyle.Render("╚"+strings.Repeat("═", width-2)+"╝"))
	lines = append(lines, accentStyle.Render(strings.Repeat("═", width)), "")
	return strings.Join(lines, "\n") + "\n"
}

func renderFallback() string {
	title := center("CodeSqueeze", fallbackInnerWidth)
	subtitle := center("Codebase → AI Format", fallbackInnerWidth)
	return fmt.Sprintf("╔%s╗\n║%s║\n║%s║\n╚%s╝\n",
		strings.Repeat("═", fallbackInnerWidth), title, subtitle, strings.Repeat("═", fallbackInnerWidth))
}

// center pads text with spaces on both sides to width display cells.
func center(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	leftPadding := (width - textWidth) / 2
	return strings.Repeat(" ", leftPadding) + text + strings.Repeat(" ", width-textWidth-leftPadding)
}

func widestLine() int {
	widest := 0
	for _, line := range append(append([]string(nil), titleArt...), taglines...) {
		widest = max(widest, lipgloss.Width(strings.TrimRight(line, " ")))
	}
	return widest
}
