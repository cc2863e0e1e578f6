package chart

import (
	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Dim        = color.New(color.Faint).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
)

// processColors is a palette of distinct bold colors for differentiating processes.
var processColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// SetNoColor disables or re-enables ANSI colors for all generators.
func SetNoColor(disabled bool) {
	color.NoColor = disabled
}

// processColor returns the palette entry for a process ID.
func processColor(id int) func(a ...interface{}) string {
	if id < 0 {
		return Dim
	}
	return processColors[id%len(processColors)]
}
