package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func TestRenderAdaptsToWidth(t *testing.T) {
	renderer := lipgloss.NewRenderer(&bytes.Buffer{})
	testCases := []struct {
		name             string
		width            int
		expectedFragment string
		expectFallback   bool
	}{
		{name: "wide_terminal", width: 120, expectedFragment: "AI-Ready Format"},
		{name: "default_width", width: 80, expectedFragment: "╔"},
		{name: "narrow_terminal", width: 30, expectedFragment: "CodeSqueeze", expectFallback: true},
		{name: "zero_width", width: 0, expectedFragment: "CodeSqueeze", expectFallback: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rendered := Render(testCase.width, renderer)
			if !strings.Contains(rendered, testCase.expectedFragment) {
				t.Fatalf("expected %q in banner:\n%s", testCase.expectedFragment, rendered)
			}
			isFallback := strings.Contains(rendered, "Codebase → AI Format")
			if isFallback != testCase.expectFallback {
				t.Fatalf("expected fallback=%t, got %t", testCase.expectFallback, isFallback)
			}
		})
	}
}

func TestRenderRowsMatchWidth(t *testing.T) {
	const width = 100
	rendered := Render(width, lipgloss.NewRenderer(&bytes.Buffer{}))
	for _, line := range strings.Split(rendered, "\n") {
		if strings.HasPrefix(line, "║") && lipgloss.Width(line) != width {
			t.Fatalf("row %q has width %d, expected %d", line, lipgloss.Width(line), width)
		}
	}
}

func TestPrintWritesToNonTerminal(t *testing.T) {
	var buffer bytes.Buffer
	Print(&buffer, zap.NewNop())
	if !strings.Contains(buffer.String(), "╚") {
		t.Fatalf("expected banner output, got %q", buffer.String())
	}
	if TerminalWidth(&buffer) != defaultWidth {
		t.Fatalf("expected default width for non-terminal writer")
	}
}
