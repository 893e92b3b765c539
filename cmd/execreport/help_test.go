package main

// Notes:
// - runHelp: we test that each command has a help page and that unknown
//   commands go to stderr.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Help pages
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{nil, "Commands:"},
		{[]string{"generate"}, "--dump-manifest"},
		{[]string{"init"}, "Usage: execreport init"},
		{[]string{"doctor"}, "--json"},
		{[]string{"version"}, "Usage: execreport version"},
		{[]string{"help"}, "Usage: execreport help"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(nil, nil)
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := newTestEnv(nil, nil)
	runHelp([]string{"convert"}, env)

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Unknown command: convert") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestUsage_ListsEveryCommand(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv(nil, nil)
	runHelp(nil, env)

	for _, c := range commands {
		if !strings.Contains(stdout.String(), "  "+c+" ") {
			t.Errorf("usage does not list %q", c)
		}
	}
}
