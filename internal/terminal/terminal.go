// Package terminal implements the command-line simulant: raw input is matched
// case-insensitively against a registry of commands and the result is
// appended to an ordered history. Reduce is pure; the caller supplies the
// current time.
package terminal

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ResultKind tags what a command asks the terminal to do.
type ResultKind int

const (
	ResultOutput ResultKind = iota
	ResultClear
)

// Result is returned by every command handler.
type Result struct {
	Kind ResultKind
	Text string
}

// Output returns a result that prints text.
func Output(text string) Result { return Result{Kind: ResultOutput, Text: text} }

// Clear returns a result that resets history to the greeting.
func Clear() Result { return Result{Kind: ResultClear} }

// Handler produces the result of one command invocation.
type Handler func(now time.Time) Result

// Entry is one line of history. Greeting entries carry no command.
type Entry struct {
	Command  string    `json:"command,omitempty"`
	Output   string    `json:"output"`
	Time     time.Time `json:"time,omitzero"`
	Greeting bool      `json:"greeting,omitempty"`
}

// History is rendered top to bottom.
type History []Entry

var (
	ErrEmptyName     = errors.New("terminal: command name is empty")
	ErrDuplicateName = errors.New("terminal: command already registered")
)

type command struct {
	name        string
	description string
	handler     Handler
}

// Registry maps lower-case command names to handlers.
type Registry struct {
	commands map[string]command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]command)}
}

// Register adds a command. Names are matched case-insensitively.
func (r *Registry) Register(name, description string, h Handler) error {
	key := normalize(name)
	if key == "" {
		return ErrEmptyName
	}
	if _, ok := r.commands[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, key)
	}
	r.commands[key] = command{name: key, description: description, handler: h}
	return nil
}

// Lookup finds the handler for raw input.
func (r *Registry) Lookup(name string) (Handler, bool) {
	c, ok := r.commands[normalize(name)]
	if !ok {
		return nil, false
	}
	return c.handler, true
}

// Names returns every registered command, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Description returns the help text registered with name.
func (r *Registry) Description(name string) string {
	return r.commands[normalize(name)].description
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Greeting builds the initial history from greeting lines.
func Greeting(lines ...string) History {
	h := make(History, 0, len(lines))
	for _, line := range lines {
		h = append(h, Entry{Output: line, Greeting: true})
	}
	return h
}

// Greeting returns the leading greeting entries of h.
func (h History) Greeting() History {
	n := 0
	for n < len(h) && h[n].Greeting {
		n++
	}
	return slices.Clone(h[:n])
}

// NotFound is the output for input that matches no command.
func NotFound(cmd string) string {
	return fmt.Sprintf("Command not found: %s\nType 'help' for available commands.", cmd)
}

// Reduce applies raw input to history and returns the new history. history
// is never modified in place.
func Reduce(history History, raw string, reg *Registry, now time.Time) History {
	input := strings.TrimSpace(raw)
	if input == "" {
		return slices.Clone(history)
	}

	var res Result
	if h, ok := reg.Lookup(input); ok {
		res = h(now)
	} else {
		res = Output(NotFound(strings.ToLower(input)))
	}

	if res.Kind == ResultClear {
		return history.Greeting()
	}

	next := make(History, len(history), len(history)+1)
	copy(next, history)
	return append(next, Entry{Command: input, Output: res.Text, Time: now})
}

// Complete returns the only command starting with prefix. It fails when
// the prefix is blank or ambiguous.
func Complete(reg *Registry, prefix string) (string, bool) {
	p := normalize(prefix)
	if p == "" {
		return "", false
	}
	var match string
	for _, name := range reg.Names() {
		if !strings.HasPrefix(name, p) {
			continue
		}
		if match != "" {
			return "", false
		}
		match = name
	}
	return match, match != ""
}
