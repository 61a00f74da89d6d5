package calc

import (
	"strings"
	"testing"

	cerrors "github.com/zhubert/calccraft/internal/errors"
)

// typeInto applies AppendChar for every rune of text.
func typeInto(s *Session, text string) State {
	var st State
	for _, r := range text {
		st = s.Apply(AppendChar(r))
	}
	return st
}

func TestSession_CommitScenario(t *testing.T) {
	s := NewSession()
	actions := []Action{
		AppendChar('1'), AppendChar('2'), AppendChar('+'), AppendChar('3'),
		AppendChar('4'), AppendChar('*'), AppendChar('2'), Eval,
	}

	var st State
	for _, a := range actions {
		st = s.Apply(a)
	}

	if st.Expression != "80" {
		t.Errorf("Expression = %q, want %q", st.Expression, "80")
	}
	if st.Preview != "" {
		t.Errorf("Preview after commit = %q, want empty", st.Preview)
	}
	if len(st.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(st.History))
	}
	if st.History[0].Expression != "12+34*2" || st.History[0].Result != "80" {
		t.Errorf("History[0] = %+v, want {12+34*2 80}", st.History[0])
	}
}

func TestSession_LivePreview(t *testing.T) {
	tests := []struct {
		typed   string
		preview string
	}{
		{"12+34*2", "80"},
		{"12+", ""},
		{"(2+3", ""},
		{"(2+3)*4", "20"},
		{"10/0", ""},
		{"1/3", "0.3333333333"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			s := NewSession()
			st := typeInto(s, tt.typed)
			if st.Preview != tt.preview {
				t.Errorf("Preview after typing %q = %q, want %q", tt.typed, st.Preview, tt.preview)
			}
			if st.Expression != tt.typed {
				t.Errorf("Expression = %q, want %q", st.Expression, tt.typed)
			}
		})
	}
}

func TestSession_InvalidEvaluateIsNoOp(t *testing.T) {
	s := NewSession()
	typeInto(s, "3+")

	st := s.Apply(Eval)
	if st.Expression != "3+" {
		t.Errorf("Expression = %q, want %q", st.Expression, "3+")
	}
	if len(st.History) != 0 {
		t.Errorf("len(History) = %d, want 0", len(st.History))
	}
	if !cerrors.Is(s.LastError(), cerrors.KindSyntax) {
		t.Errorf("LastError() = %v, want KindSyntax", s.LastError())
	}
}

func TestSession_EvaluateDivisionByZero(t *testing.T) {
	s := NewSession()
	typeInto(s, "10/0")

	st := s.Apply(Eval)
	if st.Expression != "10/0" || len(st.History) != 0 {
		t.Errorf("state = %+v, want unchanged buffer and empty history", st)
	}
	if !cerrors.Is(s.LastError(), cerrors.KindDivisionByZero) {
		t.Errorf("LastError() = %v, want KindDivisionByZero", s.LastError())
	}
}

func TestSession_EvaluateEmpty(t *testing.T) {
	s := NewSession()
	st := s.Apply(Eval)

	if st.Expression != "" || len(st.History) != 0 {
		t.Errorf("state = %+v, want empty", st)
	}
	if !cerrors.Is(s.LastError(), cerrors.KindEmpty) {
		t.Errorf("LastError() = %v, want KindEmpty", s.LastError())
	}
}

func TestSession_Backspace(t *testing.T) {
	s := NewSession()
	st := s.Apply(Backspace)
	if st.Expression != "" {
		t.Errorf("Backspace on empty: Expression = %q, want empty", st.Expression)
	}

	typeInto(s, "12+3")
	st = s.Apply(Backspace)
	if st.Expression != "12+" {
		t.Errorf("Expression = %q, want %q", st.Expression, "12+")
	}
	if st.Preview != "" {
		t.Errorf("Preview = %q, want empty", st.Preview)
	}

	st = s.Apply(Backspace)
	if st.Expression != "12" || st.Preview != "12" {
		t.Errorf("state = {%q %q}, want {12 12}", st.Expression, st.Preview)
	}
}

func TestSession_AllClear(t *testing.T) {
	s := NewSession()
	typeInto(s, "2*3")
	s.Apply(Eval)
	typeInto(s, "+1")

	st := s.Apply(AllClear)
	if st.Expression != "" || st.Preview != "" {
		t.Errorf("state = {%q %q}, want empty", st.Expression, st.Preview)
	}
	if len(st.History) != 1 {
		t.Errorf("AllClear should keep history, len = %d", len(st.History))
	}
}

func TestSession_Percent(t *testing.T) {
	s := NewSession()
	typeInto(s, "200+50")

	st := s.Apply(Percent)
	if st.Expression != "200+0.5" {
		t.Errorf("Expression = %q, want %q", st.Expression, "200+0.5")
	}
	if st.Preview != "200.5" {
		t.Errorf("Preview = %q, want %q", st.Preview, "200.5")
	}

	empty := NewSession()
	st = empty.Apply(Percent)
	if st.Expression != "%" || st.Preview != "" {
		t.Errorf("Percent on empty = {%q %q}, want {%% \"\"}", st.Expression, st.Preview)
	}
	empty.Apply(Eval)
	if empty.Expression() != "%" {
		t.Errorf("Evaluate after bare percent changed buffer to %q", empty.Expression())
	}
}

func TestSession_AppendFiltering(t *testing.T) {
	s := NewSession()
	for _, r := range "1 a=%2\t" {
		s.Apply(AppendChar(r))
	}
	if got := s.Expression(); got != "12" {
		t.Errorf("Expression = %q, want %q", got, "12")
	}
}

func TestSession_MaxLength(t *testing.T) {
	s := NewSession(WithMaxLength(5))
	typeInto(s, "1234567")

	if got := s.Expression(); got != "12345" {
		t.Errorf("Expression = %q, want %q", got, "12345")
	}
	if s.MaxLength() != 5 {
		t.Errorf("MaxLength() = %d, want 5", s.MaxLength())
	}

	def := NewSession(WithMaxLength(0))
	if def.MaxLength() != DefaultMaxExpressionLength {
		t.Errorf("MaxLength() = %d, want %d", def.MaxLength(), DefaultMaxExpressionLength)
	}
}

func TestSession_CommitThenContinue(t *testing.T) {
	s := NewSession()
	typeInto(s, "1/4")
	s.Apply(Eval)
	st := typeInto(s, "*8")

	if st.Expression != "0.25*8" || st.Preview != "2" {
		t.Errorf("state = {%q %q}, want {0.25*8 2}", st.Expression, st.Preview)
	}

	st = s.Apply(Eval)
	if len(st.History) != 2 || st.History[0].Expression != "0.25*8" {
		t.Errorf("History = %+v, want newest 0.25*8", st.History)
	}
}

func TestSession_Load(t *testing.T) {
	s := NewSession(WithMaxLength(8))

	st := s.Load(" 12 + x 3 ")
	if st.Expression != "12+3" || st.Preview != "15" {
		t.Errorf("Load = {%q %q}, want {12+3 15}", st.Expression, st.Preview)
	}

	st = s.Load(strings.Repeat("9", 20))
	if st.Expression != "99999999" {
		t.Errorf("Load truncated = %q, want %q", st.Expression, "99999999")
	}
}

func TestSession_ScientificResultKeepsValue(t *testing.T) {
	s := NewSession()
	typeInto(s, "9999999*9999999")
	st := s.Apply(Eval)
	if st.Expression != "9.999998e+13" {
		t.Fatalf("Expression after commit = %q, want %q", st.Expression, "9.999998e+13")
	}

	st = s.Apply(Eval)
	if st.Expression != "9.999998e+13" {
		t.Errorf("re-evaluated Expression = %q, want %q", st.Expression, "9.999998e+13")
	}

	st = typeInto(s, "/2")
	if st.Preview != "4.999999e+13" {
		t.Errorf("Preview after /2 = %q, want %q", st.Preview, "4.999999e+13")
	}

	s.Apply(AllClear)
	st = s.Load(st.History[len(st.History)-1].Result)
	if st.Expression != "9.999998e+13" || st.Preview != "9.999998e+13" {
		t.Errorf("reused result = {%q %q}, want {9.999998e+13 9.999998e+13}", st.Expression, st.Preview)
	}

	st = s.Apply(Backspace)
	st = s.Apply(Backspace)
	if st.Expression != "9.999998e+" || st.Preview != "" {
		t.Errorf("after backspace = {%q %q}, want dangling exponent with no preview", st.Expression, st.Preview)
	}
}

func TestSession_ClearHistory(t *testing.T) {
	s := NewSession()
	typeInto(s, "1+1")
	s.Apply(Eval)

	st := s.ClearHistory()
	if len(st.History) != 0 {
		t.Errorf("len(History) = %d, want 0", len(st.History))
	}
	if st.Expression != "2" {
		t.Errorf("Expression = %q, want %q", st.Expression, "2")
	}
}

func TestSession_SharedHistory(t *testing.T) {
	h := NewHistory(3)
	s := NewSession(WithHistory(h))
	for i := 0; i < 5; i++ {
		typeInto(s, "1+1")
		s.Apply(Eval)
		s.Apply(AllClear)
	}
	if h.Len() != 3 {
		t.Errorf("shared history Len = %d, want 3", h.Len())
	}
	if s.History() != h {
		t.Error("History() should return the injected log")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"all-clear", AllClear, true},
		{"AC", AllClear, true},
		{" backspace ", Backspace, true},
		{"percent", Percent, true},
		{"=", Eval, true},
		{"evaluate", Eval, true},
		{"explode", Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAction(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAction_String(t *testing.T) {
	if got := AppendChar('7').String(); got != "append('7')" {
		t.Errorf("String() = %q, want %q", got, "append('7')")
	}
	if got := Eval.String(); got != "evaluate" {
		t.Errorf("String() = %q, want %q", got, "evaluate")
	}
}
