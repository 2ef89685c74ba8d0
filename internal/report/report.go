// Package report renders probe outcomes: the canonical plain-text probe
// report, JSON output, and human-readable size formatting for model
// directories.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/varunkalambe/speechprobe/internal/probe"
)

// NotFound is rendered for interpreter fields that could not be determined.
// The contract lines must always be present and non-empty.
const NotFound = "not found"

// PrintResult writes the canonical probe report. The line format is a
// stable contract inherited from the legacy backend smoke test:
//
//	Python executable: <path>
//	Python version: <version>
//	SUCCESS: Vosk is available
//	Vosk version: <version>
//
// or, on the failure branch, the last two lines are replaced by:
//
//	ERROR: Vosk not found - <detail>
func PrintResult(w io.Writer, interp probe.Interpreter, display string, res probe.Result) {
	exe, ver := interp.Executable, interp.Version
	if exe == "" {
		exe = NotFound
	}
	if ver == "" {
		ver = NotFound
	}
	fmt.Fprintf(w, "Python executable: %s\n", exe)
	fmt.Fprintf(w, "Python version: %s\n", ver)
	if res.OK() {
		fmt.Fprintf(w, "SUCCESS: %s is available\n", display)
		fmt.Fprintf(w, "%s version: %s\n", display, res.Version)
	} else {
		fmt.Fprintf(w, "ERROR: %s not found - %s\n", display, res.Detail)
	}
}

// JSONReport is the machine-readable rendering of a probe run.
type JSONReport struct {
	Python  *probe.Interpreter `json:"python,omitempty"`
	Results []probe.Result     `json:"results"`
}

// WriteJSON writes the report as indented JSON followed by a newline.
func WriteJSON(w io.Writer, rep JSONReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
