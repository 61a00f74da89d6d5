package calc

import (
	"fmt"
	"strings"
)

// DefaultMaxExpressionLength bounds the buffer so worst-case parse time
// stays small. AppendChar beyond it is ignored.
const DefaultMaxExpressionLength = 256

// ActionKind identifies what an Action does to the buffer.
type ActionKind int

const (
	ActionAppend ActionKind = iota
	ActionAllClear
	ActionBackspace
	ActionPercent
	ActionEvaluate
)

// String returns the name used for the action in scripts and logs.
func (k ActionKind) String() string {
	switch k {
	case ActionAppend:
		return "append"
	case ActionAllClear:
		return "all-clear"
	case ActionBackspace:
		return "backspace"
	case ActionPercent:
		return "percent"
	case ActionEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Action is one discrete input applied to a Session.
type Action struct {
	Kind ActionKind
	Char rune // ActionAppend only
}

// String renders the action for logs, e.g. "append('7')" or "evaluate".
func (a Action) String() string {
	if a.Kind == ActionAppend {
		return fmt.Sprintf("append(%q)", a.Char)
	}
	return a.Kind.String()
}

// Predefined actions that carry no payload.
var (
	AllClear  = Action{Kind: ActionAllClear}
	Backspace = Action{Kind: ActionBackspace}
	Percent   = Action{Kind: ActionPercent}
	Eval      = Action{Kind: ActionEvaluate}
)

// AppendChar returns the action that types c.
func AppendChar(c rune) Action {
	return Action{Kind: ActionAppend, Char: c}
}

// ParseAction resolves a payload-free action by name ("all-clear",
// "backspace", "percent", "evaluate").
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all-clear", "clear", "ac":
		return AllClear, true
	case "backspace":
		return Backspace, true
	case "percent", "%":
		return Percent, true
	case "evaluate", "=":
		return Eval, true
	default:
		return Action{}, false
	}
}

// State is the read-only snapshot a caller renders after each action.
type State struct {
	Expression string  `json:"expression" yaml:"expression"`
	Preview    string  `json:"preview" yaml:"preview"`
	History    []Entry `json:"history" yaml:"history"`
}

// Session owns the expression buffer and its derived preview.
type Session struct {
	buffer  string
	preview string
	history *History
	maxLen  int
	lastErr error
}

// Option configures a Session.
type Option func(*Session)

// WithMaxLength sets the buffer length bound. Non-positive values keep
// DefaultMaxExpressionLength.
func WithMaxLength(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxLen = n
		}
	}
}

// WithHistory makes the session record commits into h.
func WithHistory(h *History) Option {
	return func(s *Session) {
		if h != nil {
			s.history = h
		}
	}
}

// NewSession creates a session with an empty buffer and history.
func NewSession(opts ...Option) *Session {
	s := &Session{
		maxLen: DefaultMaxExpressionLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = NewHistory(DefaultHistoryCapacity)
	}
	s.refresh()
	return s
}

// Apply performs a and returns the resulting state. It never fails:
// evaluation problems show up as a blank preview or an unchanged buffer.
func (s *Session) Apply(a Action) State {
	switch a.Kind {
	case ActionAllClear:
		s.buffer = ""
	case ActionBackspace:
		if s.buffer != "" {
			s.buffer = s.buffer[:len(s.buffer)-1]
		}
	case ActionAppend:
		s.appendChar(a.Char)
	case ActionPercent:
		s.buffer = percentRewrite(s.buffer)
	case ActionEvaluate:
		if s.commit() {
			return s.State()
		}
	}
	s.refresh()
	return s.State()
}

// Load replaces the buffer with expr after sanitizing it, stripping
// whitespace and truncating to the length bound. Reusing a history result
// and pasting text both go through here.
func (s *Session) Load(expr string) State {
	buf := stripSpace(Sanitize(expr))
	if len(buf) > s.maxLen {
		buf = buf[:s.maxLen]
	}
	s.buffer = buf
	s.refresh()
	return s.State()
}

// ClearHistory empties the history without touching the buffer.
func (s *Session) ClearHistory() State {
	s.history.Clear()
	return s.State()
}

// State returns a snapshot of the buffer, preview and history.
func (s *Session) State() State {
	return State{
		Expression: s.buffer,
		Preview:    s.preview,
		History:    s.history.All(),
	}
}

// Expression returns the current buffer.
func (s *Session) Expression() string {
	return s.buffer
}

// Preview returns the formatted preview, or "" when the buffer does not
// evaluate.
func (s *Session) Preview() string {
	return s.preview
}

// History returns the session's history log.
func (s *Session) History() *History {
	return s.history
}

// MaxLength returns the buffer length bound.
func (s *Session) MaxLength() int {
	return s.maxLen
}

// LastError returns the evaluation error behind the most recent blank
// preview or rejected commit, or nil.
func (s *Session) LastError() error {
	return s.lastErr
}

func (s *Session) appendChar(c rune) {
	if c == '%' || c == '=' || !IsAllowed(c) {
		return
	}
	next := stripSpace(s.buffer + string(c))
	if len(next) > s.maxLen {
		return
	}
	s.buffer = next
}

// commit evaluates the buffer and, on success, records it and replaces the
// buffer with the formatted result.
func (s *Session) commit() bool {
	v, err := Evaluate(Sanitize(s.buffer))
	if err != nil {
		s.lastErr = err
		return false
	}
	result := Format(v)
	s.history.Record(s.buffer, result)
	s.buffer = result
	s.preview = ""
	s.lastErr = nil
	return true
}

// refresh recomputes the preview from the buffer.
func (s *Session) refresh() {
	v, err := Evaluate(Sanitize(s.buffer))
	if err != nil {
		s.preview = ""
		s.lastErr = err
		return
	}
	s.preview = Format(v)
	s.lastErr = nil
}
