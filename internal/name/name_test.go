package name

import "testing"

func TestToHex(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
		ok      bool
	}{
		{"basic color", "red", "#ff0000", true},
		{"extended color", "rebeccapurple", "#663399", true},
		{"uppercase keyword", "REBECCAPURPLE", "#663399", true},
		{"mixed case keyword", "CornflowerBlue", "#6495ed", true},
		{"both gray spellings", "grey", "#808080", true},
		{"unknown keyword", "not-a-color", "", false},
		{"empty keyword", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToHex(tt.keyword)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ToHex(%q) = (%q, %v), want (%q, %v)", tt.keyword, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
		ok   bool
	}{
		{"red", "#ff0000", "red", true},
		{"rebeccapurple", "#663399", "rebeccapurple", true},
		{"uppercase hex", "#FF0000", "red", true},
		{"unnamed hex", "#123456", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromHex(tt.hex)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FromHex(%q) = (%q, %v), want (%q, %v)", tt.hex, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFromHexDeterministicWinner(t *testing.T) {
	// gray and grey share #808080; the sorted-order build must always pick
	// the lexicographically smaller keyword.
	for i := 0; i < 3; i++ {
		got, ok := FromHex("#808080")
		if !ok || got != "gray" {
			t.Fatalf("lookup %d: got (%q, %v), want (\"gray\", true)", i, got, ok)
		}
	}

	// Same rule for the aqua/cyan and fuchsia/magenta aliases.
	if got, _ := FromHex("#00ffff"); got != "aqua" {
		t.Errorf("#00ffff: got %q, want \"aqua\"", got)
	}
	if got, _ := FromHex("#ff00ff"); got != "fuchsia" {
		t.Errorf("#ff00ff: got %q, want \"fuchsia\"", got)
	}
}

func TestTableSize(t *testing.T) {
	if Len() != 148 {
		t.Errorf("table has %d keywords, want 148", Len())
	}
}

func TestForwardReverseAgree(t *testing.T) {
	for kw, hex := range table {
		back, ok := FromHex(hex)
		if !ok {
			t.Fatalf("%s (%s) missing from reverse table", kw, hex)
		}
		if got, _ := ToHex(back); got != hex {
			t.Errorf("reverse winner %q maps to %q, want %q", back, got, hex)
		}
	}
}
