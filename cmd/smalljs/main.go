package main

import (
	"errors"
	"fmt"
	"os"

	"smalljs/interpreter-go/pkg/driver"
	"smalljs/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "smalljs-cli 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "repl":
		return runRepl()
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	if len(args) > 1 {
		printUsage()
		return 1
	}

	var scriptPath string
	if len(args) == 1 {
		scriptPath = args[0]
	} else {
		manifestPath, err := driver.FindManifest(".")
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "no script given and no %s found\n", driver.ManifestFileName)
			} else {
				fmt.Fprintf(os.Stderr, "failed to locate manifest: %v\n", err)
			}
			return 1
		}
		manifest, err := driver.LoadManifest(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return 1
		}
		scriptPath = manifest.MainScript()
	}

	block, err := driver.LoadScript(scriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.DescribeError(scriptPath, err))
		return 1
	}
	interp := interpreter.New(os.Stdout)
	if err := interp.EvaluateScript(block); err != nil {
		fmt.Fprintln(os.Stderr, driver.DescribeError(scriptPath, err))
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  smalljs run [script]   execute a script (or the manifest's main entrypoint)
  smalljs repl           start an interactive session
  smalljs version        print the CLI version`)
}
