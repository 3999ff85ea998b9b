package interview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession_WalksPrompts(t *testing.T) {
	t.Parallel()

	s := New([]string{"Name?", "Role?"})

	if p, ok := s.Current(); !ok || p != "Name?" {
		t.Fatalf("Current = (%q, %v), want Name?", p, ok)
	}
	if s.Answer("   ") {
		t.Fatal("blank answer accepted")
	}
	if !s.Answer(" Ada ") {
		t.Fatal("answer rejected")
	}
	if p, _ := s.Current(); p != "Role?" {
		t.Fatalf("Current = %q, want Role?", p)
	}
	s.Answer("Engineer")

	if !s.Complete() {
		t.Fatal("session not complete after last prompt")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("Current reported a prompt after completion")
	}
	if s.Answer("extra") {
		t.Fatal("answer accepted after completion")
	}

	want := []Answer{{"Name?", "Ada"}, {"Role?", "Engineer"}}
	if diff := cmp.Diff(want, s.Transcript()); diff != "" {
		t.Fatalf("transcript (-want +got):\n%s", diff)
	}
	if a, n := s.Progress(); a != 2 || n != 2 {
		t.Fatalf("Progress = %d/%d, want 2/2", a, n)
	}
}

func TestSession_ResetAndEmpty(t *testing.T) {
	t.Parallel()

	s := New([]string{"Only?"})
	s.Answer("yes")
	s.Reset()
	if s.Complete() {
		t.Fatal("complete after reset")
	}

	empty := New(nil)
	if !empty.Complete() {
		t.Fatal("session without prompts should be complete")
	}
}
