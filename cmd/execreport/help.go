package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: execreport [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate the executive report (default)")
	fmt.Fprintln(w, "  init       Write a sample config file")
	fmt.Fprintln(w, "  doctor     Check browser and system readiness")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'execreport help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: execreport [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the two-page executive report as HTML and PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>        PDF path (default premium_report.pdf)")
	fmt.Fprintln(w, "      --html <path>          HTML path (default premium_report.html)")
	fmt.Fprintln(w, "      --html-only            Write HTML only, skip PDF conversion")
	fmt.Fprintln(w, "      --no-html              Print the PDF without keeping the HTML file")
	fmt.Fprintln(w, "      --dump-manifest <path> Write a JSON manifest of generated files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --company <s>          Company name (default Northstar Dynamics)")
	fmt.Fprintln(w, "      --month <s>            Period: literal, \"auto\" or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                             Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --doc-id <s>           Document ID (\"auto\" = random UUID)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -r, --renderer <s>         markup (HTML + browser) or canvas (direct PDF)")
	fmt.Fprintln(w, "  -t, --timeout <d>          Browser conversion timeout (default 30s)")
	fmt.Fprintln(w, "      --download-browser     Download Chromium if none is installed")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Log each pipeline step to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  EXECREPORT_CONFIG, EXECREPORT_COMPANY, EXECREPORT_MONTH,")
	fmt.Fprintln(w, "  EXECREPORT_RENDERER, EXECREPORT_TIMEOUT, EXECREPORT_DOC_ID")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN         Browser executable for the markup renderer")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "init":
		fmt.Fprintln(env.Stdout, "Usage: execreport init [path] [--force]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Write a config file with the sample report (default execreport.yaml).")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: execreport doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that a headless browser is available for the markup renderer.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: execreport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: execreport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
