package terminal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tinytelemetry/termfolio/internal/profile"
)

var fixedNow = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	for name, text := range map[string]string{
		"help":   "Available commands...",
		"whoami": "a developer",
		"what":   "ambiguous with whoami",
	} {
		if err := reg.Register(name, "", func(time.Time) Result { return Output(text) }); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	if err := reg.Register("clear", "", func(time.Time) Result { return Clear() }); err != nil {
		t.Fatalf("Register(clear): %v", err)
	}
	return reg
}

func TestReduce_ClearRestoresGreeting(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	greeting := Greeting("Welcome")

	h := Reduce(greeting, "help", reg, fixedNow)
	h = Reduce(h, "whoami", reg, fixedNow)
	h = Reduce(h, "CLEAR", reg, fixedNow)

	if diff := cmp.Diff(greeting, h); diff != "" {
		t.Fatalf("history after clear (-want +got):\n%s", diff)
	}
}

func TestReduce_ClearOnFreshGreeting(t *testing.T) {
	t.Parallel()

	greeting := Greeting("Welcome", "Type help")
	got := Reduce(greeting, "clear", testRegistry(t), fixedNow)
	if diff := cmp.Diff(greeting, got); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
}

func TestReduce_MatchedCommandAppendsOneEntry(t *testing.T) {
	t.Parallel()

	greeting := Greeting("Welcome")
	got := Reduce(greeting, "help", testRegistry(t), fixedNow)

	want := History{
		{Output: "Welcome", Greeting: true},
		{Command: "help", Output: "Available commands...", Time: fixedNow},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
	if len(greeting) != 1 {
		t.Fatalf("input history mutated: %+v", greeting)
	}
}

func TestReduce_CaseInsensitiveKeepsTypedText(t *testing.T) {
	t.Parallel()

	got := Reduce(nil, "  WhoAmI  ", testRegistry(t), fixedNow)
	if len(got) != 1 {
		t.Fatalf("history = %+v, want one entry", got)
	}
	if got[0].Command != "WhoAmI" || got[0].Output != "a developer" {
		t.Fatalf("entry = %+v", got[0])
	}
}

func TestReduce_UnknownCommand(t *testing.T) {
	t.Parallel()

	got := Reduce(Greeting("hi"), "zzz", testRegistry(t), fixedNow)
	if len(got) != 2 {
		t.Fatalf("history = %+v, want greeting plus one entry", got)
	}
	last := got[1]
	if last.Command != "zzz" {
		t.Fatalf("command = %q, want zzz", last.Command)
	}
	if !strings.Contains(last.Output, "not found") {
		t.Fatalf("output %q does not mention not found", last.Output)
	}
	if !strings.Contains(last.Output, "help") {
		t.Fatalf("output %q does not hint at help", last.Output)
	}
}

func TestReduce_BlankInputIsIgnored(t *testing.T) {
	t.Parallel()

	greeting := Greeting("hi")
	for _, raw := range []string{"", "   ", "\t\n"} {
		got := Reduce(greeting, raw, testRegistry(t), fixedNow)
		if diff := cmp.Diff(greeting, got); diff != "" {
			t.Fatalf("Reduce(%q) changed history (-want +got):\n%s", raw, diff)
		}
	}
}

func TestReduce_ClearOutputTextIsNotASignal(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	// A command whose output happens to look like a control word still prints.
	if err := reg.Register("echo-clear", "", func(time.Time) Result { return Output("clear") }); err != nil {
		t.Fatal(err)
	}
	got := Reduce(Greeting("hi"), "echo-clear", reg, fixedNow)
	if len(got) != 2 || got[1].Output != "clear" {
		t.Fatalf("history = %+v, want printed output", got)
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	noop := func(time.Time) Result { return Output("") }

	if err := reg.Register("  ", "", noop); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name err = %v, want ErrEmptyName", err)
	}
	if err := reg.Register("Help", "", noop); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("HELP", "", noop); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate err = %v, want ErrDuplicateName", err)
	}
	if _, ok := reg.Lookup("hElP"); !ok {
		t.Fatal("lookup is not case-insensitive")
	}
	if diff := cmp.Diff([]string{"help"}, reg.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	tests := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"he", "help", true},
		{"HE", "help", true},
		{"c", "clear", true},
		{"wh", "", false}, // whoami and what
		{"who", "whoami", true},
		{"x", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Complete(reg, tt.prefix)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Complete(%q) = (%q, %v), want (%q, %v)", tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	reg := DefaultRegistry(p)

	want := []string{"clear", "contact", "date", "help", "projects", "skills", "social", "whoami"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("commands (-want +got):\n%s", diff)
	}

	h := Reduce(Greeting(p.Greeting...), "help", reg, fixedNow)
	out := h[len(h)-1].Output
	for _, name := range want {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q", name)
		}
	}

	h = Reduce(h, "whoami", reg, fixedNow)
	if out := h[len(h)-1].Output; !strings.Contains(out, p.Name) {
		t.Errorf("whoami output missing name: %q", out)
	}

	h = Reduce(h, "date", reg, fixedNow)
	if out := h[len(h)-1].Output; !strings.Contains(out, "Sat Mar 14 2026 15:09:26 UTC") {
		t.Errorf("date output = %q", out)
	}

	h = Reduce(h, "skills", reg, fixedNow)
	if out := h[len(h)-1].Output; !strings.Contains(out, "Frontend:") {
		t.Errorf("skills output = %q", out)
	}

	h = Reduce(h, "clear", reg, fixedNow)
	if diff := cmp.Diff(Greeting(p.Greeting...), h); diff != "" {
		t.Fatalf("history after clear (-want +got):\n%s", diff)
	}
}
