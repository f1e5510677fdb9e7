// Package host is the reference implementation of the services a dices
// embedding host supplies (spec §1's "intrinsic host" contract): the
// `print` log sink and the `help` manual lookup intrinsic.Host requires.
// It exists so the engine is exercisable and testable standalone,
// without pulling in the out-of-scope REPL or HTTP server (spec §1),
// mirroring how the teacher's types.TaskContext (types/context.go) is a
// plain struct threaded through evaluation rather than a live connection
// to a running MOO server.
package host

import (
	"sort"

	"github.com/zannabianca1997/dices-go/ast"
)

// State is a minimal, in-memory intrinsic.Host: a log sink collecting
// every `print`ed value and a fixed topic->page manual. It is not
// goroutine-safe by design, matching spec §5's "one evaluation context,
// one host-state reference, exclusively owned by the thread running it".
type State struct {
	Logged []string
	topics map[string]string
}

// New builds a State with the given manual pages.
func New(topics map[string]string) *State {
	if topics == nil {
		topics = map[string]string{}
	}
	return &State{topics: topics}
}

// AddTopic registers or replaces a manual page.
func (s *State) AddTopic(name, page string) {
	s.topics[name] = page
}

// Log appends the literal rendering of each value, implementing
// intrinsic.Host.
func (s *State) Log(values []ast.Value) {
	for _, v := range values {
		s.Logged = append(s.Logged, v.String())
	}
}

// HelpTopic looks up a manual page by name.
func (s *State) HelpTopic(name string) (string, bool) {
	page, ok := s.topics[name]
	return page, ok
}

// HelpTopics lists every topic in deterministic (sorted) order.
func (s *State) HelpTopics() []string {
	names := make([]string, 0, len(s.topics))
	for name := range s.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
