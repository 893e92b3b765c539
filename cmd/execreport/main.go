package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// Without a command name, or with a flag first, it runs generate.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env)

	cmd, rest := "generate", args[1:]
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "init":
		err = runInit(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "execreport %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// commands lists the recognised command names.
var commands = []string{"generate", "doctor", "init", "version", "help"}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return false
	}
	for _, c := range commands {
		if arg == c {
			return true
		}
	}
	return false
}
