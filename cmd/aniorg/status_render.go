package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"aniorg/internal/workflow"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func statusLabel(kind statusKind, colorize bool) string {
	var label, color string
	switch kind {
	case statusWarn:
		label, color = "WARN", ansiYellow
	case statusError:
		label, color = "FAIL", ansiRed
	default:
		label, color = "OK", ansiGreen
	}
	if !colorize {
		return label
	}
	return color + label + ansiReset
}

func renderSummaryLine(summary workflow.Summary, colorize bool) string {
	line := summary.String()
	if !colorize {
		return line
	}
	if summary.Failed > 0 {
		return ansiYellow + line + ansiReset
	}
	return ansiGreen + line + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
