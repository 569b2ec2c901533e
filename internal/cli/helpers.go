package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output streams, replaced in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// Output switches, set once per command from the root's persistent flags
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags applies --quiet, --no-color and --yes
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// IsQuiet reports whether --quiet is set
func IsQuiet() bool {
	return quiet
}

// Confirm asks a yes/no question on stdout. --yes answers it.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Fprint(stdout, prompt+suffix)

	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// message is one kind of status line: a symbol, or a label under --no-color
type message struct {
	symbol string
	label  string
}

var (
	successMsg = message{symbol: "✓", label: "OK:"}
	infoMsg    = message{symbol: "ℹ", label: "INFO:"}
	warningMsg = message{symbol: "⚠", label: "WARNING:"}
	errorMsg   = message{symbol: "✗", label: "ERROR:"}
)

func (m message) print(w io.Writer, format string, args []interface{}) {
	prefix := m.symbol
	if noColor {
		prefix = m.label
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// PrintSuccess prints to stdout unless --quiet
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		successMsg.print(stdout, format, args)
	}
}

// PrintInfo prints to stdout unless --quiet
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		infoMsg.print(stdout, format, args)
	}
}

// PrintWarning prints to stderr, even under --quiet
func PrintWarning(format string, args ...interface{}) {
	warningMsg.print(stderr, format, args)
}

// PrintError prints to stderr, even under --quiet
func PrintError(format string, args ...interface{}) {
	errorMsg.print(stderr, format, args)
}
