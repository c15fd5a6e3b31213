// Command momentsctl drives the moments engine from the shell: it reads
// and writes Spectrum/TLSpectrum files in the specio text format and
// exposes the manip, integrate, twolocus, and ldstats packages as
// subcommands, so a diffusion-approximation pipeline can be scripted
// without writing Go.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
