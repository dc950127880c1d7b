// Command nurbsjoin joins a JSON description of lines, arcs and NURBS curves
// into a single NURBS curve and prints it as JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"honnef.co/go/nurbs/internal/joincmd"
)

func main() {
	cfg, err := joincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("%v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	if err := joincmd.Run(cfg, os.Stdin, os.Stdout); err != nil {
		exitf("%v", err)
	}
}

func exitf(format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error:")
	fmt.Fprintf(os.Stderr, " "+format+"\n", args...)
	os.Exit(1)
}
