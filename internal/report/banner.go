package report

import (
	"fmt"
	"os"

	"github.com/varunkalambe/speechprobe/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are
// enabled. Only the diagnostic surfaces print it — the plain probe output
// is a fixed-format contract with no room for decoration.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ___ _ __  ___  ___  ___| |__  _ __  _ __ ___ | |__   ___
/ __| '_ \/ _ \/ _ \/ __| '_ \| '_ \| '__/ _ \| '_ \ / _ \
\__ \ |_) |  __/  __/ (__| | | | |_) | | | (_) | |_) |  __/
|___/ .__/\___|\___|\___|_| |_| .__/|_|  \___/|_.__/ \___|
    |_|                       |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
