package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	goalsdto "goalcheer/internal/modules/goals/dto"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("goalcheer %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestReportCompletionOnlyForFinishedList(t *testing.T) {
	t.Parallel()
	var w bytes.Buffer
	if reportCompletion(&w, goalsdto.ListOutput{Total: 2, Done: 1}) || w.Len() != 0 {
		t.Fatalf("expected nothing printed for an open list, got %q", w.String())
	}
	if !reportCompletion(&w, goalsdto.ListOutput{Total: 1, Done: 1, AllDone: true}) {
		t.Fatalf("expected a finished list to report completion")
	}
	if !strings.Contains(w.String(), "all goals complete!") {
		t.Fatalf("expected banner, got %q", w.String())
	}
}

func TestRemovingLastOpenGoalReportsCompletion(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	runCLI(t, "--dir", dir, "goals", "add", "stretch")
	runCLI(t, "--dir", dir, "goals", "add", "drink", "water")

	var list goalsdto.ListOutput
	if err := json.Unmarshal([]byte(runCLI(t, "--dir", dir, "goals", "list", "--json")), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(list.Goals))
	}
	ids := map[string]string{}
	for _, g := range list.Goals {
		ids[g.Text] = g.ID
	}

	if out := runCLI(t, "--dir", dir, "goals", "toggle", ids["stretch"]); strings.Contains(out, "all goals complete") {
		t.Fatalf("expected no banner while a goal is open, got %q", out)
	}
	out := runCLI(t, "--dir", dir, "goals", "remove", ids["drink water"])
	if !strings.Contains(out, "removed "+ids["drink water"]+", 1 goals left") {
		t.Fatalf("unexpected remove output %q", out)
	}
	if !strings.Contains(out, "🎉 all goals complete!") {
		t.Fatalf("expected completion banner after removing the last open goal, got %q", out)
	}
}
