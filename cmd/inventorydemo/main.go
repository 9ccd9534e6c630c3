package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/inventorydemo/internal/cli"
	"github.com/idilsaglam/inventorydemo/internal/logging"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := pflag.String("theme", "classic", "colour theme: classic, neon or mono")
	noColor := pflag.Bool("no-color", false, "never style output")
	forceColor := pflag.Bool("force-color", false, "style output even when stdout is not a terminal")
	logLevel := pflag.String("log-level", logging.DefaultLevel, "stderr log level: debug, info, warn, error")
	seed := pflag.String("inventory", "", "JSON file with the starting inventory")
	pflag.Usage = func() { cli.PrintHelp(os.Stderr) }

	// Stop at the subcommand so "area -10" keeps its argument.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	// No subcommand runs the demonstration.
	code := cli.Run(pflag.Args(), cli.Options{
		Theme:      *theme,
		NoColor:    *noColor,
		ForceColor: *forceColor,
		LogLevel:   *logLevel,
		SeedPath:   *seed,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
