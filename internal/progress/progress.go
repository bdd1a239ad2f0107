// Package progress provides terminal progress indication for the fetch and
// render steps: a spinner on interactive terminals, plain lines otherwise.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// DetectTerminalCapabilities inspects stdout and the environment.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("MODELREPORT_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// symbols holds the marks used for step results.
type symbols struct {
	ok         string
	fail       string
	spinnerSet int
}

func selectSymbols(caps TerminalCapabilities) symbols {
	if caps.SupportsUnicode {
		return symbols{ok: "✓", fail: "✗", spinnerSet: 14}
	}
	return symbols{ok: "[OK]", fail: "[FAIL]", spinnerSet: 9}
}

// Indicator displays the lifecycle of one step at a time. A quiet indicator
// swallows everything, so callers never branch on quiet mode themselves.
type Indicator struct {
	caps    TerminalCapabilities
	sym     symbols
	quiet   bool
	spinner *spinner.Spinner
}

// New creates an indicator bound to the detected terminal.
func New(quiet bool) *Indicator {
	caps := DetectTerminalCapabilities()
	return &Indicator{caps: caps, sym: selectSymbols(caps), quiet: quiet}
}

// Start begins displaying one step.
func (i *Indicator) Start(msg string) {
	if i.quiet {
		return
	}
	if i.caps.IsTTY {
		i.spinner = spinner.New(spinner.CharSets[i.sym.spinnerSet], 100*time.Millisecond)
		i.spinner.Writer = os.Stderr
		i.spinner.Suffix = " " + msg
		i.spinner.Start()
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Succeed stops the current step and prints a success mark.
func (i *Indicator) Succeed(msg string) {
	i.stopSpinner()
	if i.quiet {
		return
	}
	mark := i.sym.ok
	if i.caps.SupportsColor {
		mark = color.GreenString(mark)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", mark, msg)
}

// Fail stops the current step and prints a failure mark with the error.
func (i *Indicator) Fail(msg string, err error) {
	i.stopSpinner()
	if i.quiet {
		return
	}
	mark := i.sym.fail
	if i.caps.SupportsColor {
		mark = color.RedString(mark)
	}
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", mark, msg, err)
}

func (i *Indicator) stopSpinner() {
	if i.spinner != nil {
		i.spinner.Stop()
		i.spinner = nil
	}
}
