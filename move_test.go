package chess

import "testing"

func TestMoveUCI(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{Move{From: E2, To: E4, Promotion: NoPieceType, Drop: NoPieceType}, "e2e4"},
		{Move{From: A7, To: A8, Promotion: Queen, Drop: NoPieceType}, "a7a8q"},
		{NullMove, "0000"},
		{Move{From: A1, To: D4, Promotion: NoPieceType, Drop: Knight}, "N@d4"},
	}
	for _, c := range cases {
		if got := c.m.UCI(); got != c.want {
			t.Errorf("UCI() = %q, want %q", got, c.want)
		}
	}
}

func TestParseUCI(t *testing.T) {
	m, err := ParseUCI("e2e4")
	if err != nil {
		t.Fatalf("ParseUCI(e2e4) error: %v", err)
	}
	if m.From != E2 || m.To != E4 {
		t.Errorf("ParseUCI(e2e4) = %+v", m)
	}

	m, err = ParseUCI("a7a8q")
	if err != nil {
		t.Fatalf("ParseUCI(a7a8q) error: %v", err)
	}
	if m.Promotion != Queen {
		t.Errorf("promotion = %v, want Queen", m.Promotion)
	}

	m, err = ParseUCI("0000")
	if err != nil || !m.IsNull() {
		t.Errorf("ParseUCI(0000) = %+v, %v, want null move", m, err)
	}

	m, err = ParseUCI("N@d4")
	if err != nil {
		t.Fatalf("ParseUCI(N@d4) error: %v", err)
	}
	if !m.IsDrop() || m.Drop != Knight || m.To != D4 {
		t.Errorf("ParseUCI(N@d4) = %+v", m)
	}

	for _, bad := range []string{"", "e2e9", "e2", "abcde"} {
		if _, err := ParseUCI(bad); err == nil {
			t.Errorf("ParseUCI(%q) expected error", bad)
		}
	}
}

func TestMoveEquals(t *testing.T) {
	a := Move{From: E2, To: E4, Promotion: NoPieceType, Drop: NoPieceType}
	b := Move{From: E2, To: E4, Promotion: NoPieceType, Drop: NoPieceType}
	if !a.Equals(b) {
		t.Error("identical moves should be equal")
	}
}
