// Package platform holds terminal helpers shared by the plain-text commands:
// TTY detection, ANSI color and JSON output.
package platform

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled controls whether ANSI escape codes are emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether color output should be enabled.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY stdout.
func InitColor() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ANSI escape codes
const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiGray    = "\033[90m"
)

// apply wraps s with the given ANSI code when color is enabled.
func apply(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// --- Semantic color functions ---

func Bold(s string) string     { return apply(ansiBold, s) }
func Dim(s string) string      { return apply(ansiDim, s) }
func Red(s string) string      { return apply(ansiRed, s) }
func Yellow(s string) string   { return apply(ansiYellow, s) }
func Gray(s string) string     { return apply(ansiGray, s) }
func BoldBlue(s string) string { return apply(ansiBold+ansiBlue, s) }
func BoldCyan(s string) string { return apply(ansiBold+ansiCyan, s) }

// categoryANSI maps category color tokens to the nearest ANSI foreground.
var categoryANSI = map[string]string{
	"bg-gray-600":    ansiGray,
	"bg-blue-600":    ansiBlue,
	"bg-purple-600":  ansiMagenta,
	"bg-emerald-600": ansiGreen,
	"bg-red-600":     ansiRed,
	"bg-indigo-600":  ansiBlue,
}

// Token colors s with the ANSI equivalent of a category color token.
// Unknown tokens render gray.
func Token(token, s string) string {
	code, ok := categoryANSI[token]
	if !ok {
		code = ansiGray
	}
	return apply(ansiBold+code, s)
}

// --- High-level print helpers ---

// PrintBanner prints a bold cyan banner line: "\n=== title ===\n"
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", BoldCyan("=== "+title+" ==="))
}

// PrintSubtitle prints a dimmed line under a banner: "  msg\n"
func PrintSubtitle(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s\n", Dim(msg))
}

// PrintInfo prints a plain INFO status: "  [INFO] msg\n"
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  [INFO] %s\n", msg)
}

// PrintWarningLine prints a yellow message: "  msg\n"
func PrintWarningLine(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s\n", Yellow(msg))
}
