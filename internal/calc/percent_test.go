package calc

import "testing"

func TestPercentRewrite(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want string
	}{
		{"rewrites trailing number only", "200+50", "200+0.5"},
		{"empty buffer falls back to percent sign", "", "%"},
		{"operator only falls back", "+", "+%"},
		{"single number", "50", "0.5"},
		{"decimal", "1.5", "0.015"},
		{"leading point", ".5", "0.005"},
		{"number before trailing operator", "12+", "0.12+"},
		{"number inside parens", "(5)", "(0.05)"},
		{"number before open paren", "3*(", "0.03*("},
		{"zero", "0", "0"},
		{"two points uses last run", "1.2.3", "1.0.023"},
		{"existing percent sign", "5%", "0.05%"},
		{"tiny result stays decimal", "0.0005", "0.000005"},
		{"scientific result", "9.999998e+13", "999999800000"},
		{"scientific after operator", "1+5e-7", "1+0.000000005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentRewrite(tt.buf); got != tt.want {
				t.Errorf("percentRewrite(%q) = %q, want %q", tt.buf, got, tt.want)
			}
		})
	}
}

func TestLastNumber(t *testing.T) {
	tests := []struct {
		input     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"", 0, 0, false},
		{"+-*", 0, 0, false},
		{"42", 0, 2, true},
		{"1+23", 2, 4, true},
		{"1+2.5)", 2, 5, true},
		{"7*.25", 2, 5, true},
		{"1..2", 2, 4, true},
		{"3.", 0, 1, true},
		{"1+9.5e+13", 2, 9, true},
		{"2e5", 0, 3, true},
		{"e5", 1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			start, end, ok := lastNumber(tt.input)
			if start != tt.wantStart || end != tt.wantEnd || ok != tt.wantOK {
				t.Errorf("lastNumber(%q) = %d, %d, %v; want %d, %d, %v",
					tt.input, start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}
