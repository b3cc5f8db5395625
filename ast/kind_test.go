package ast

import "testing"

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != k {
			t.Errorf("round trip %s gave %s", k, back)
		}
	}
}

func TestParseKindRejects(t *testing.T) {
	for _, s := range []string{"", "List", "class", "Bogus"} {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) should fail", s)
		}
	}
	if InvalidKind.String() != "<unknown kind>" {
		t.Errorf("got %q", InvalidKind.String())
	}
}

func TestHasValue(t *testing.T) {
	valued := map[Kind]bool{
		NameKind:          true,
		QualifiedNameKind: true,
		IntLiteralKind:    true,
		FloatLiteralKind:  true,
		StringLiteralKind: true,
		CharLiteralKind:   true,
		BoolLiteralKind:   true,
		OperatorKind:      true,
		BinaryKind:        true,
		UnaryKind:         true,
		AssignKind:        true,
	}
	for _, k := range Kinds() {
		if k.HasValue() != valued[k] {
			t.Errorf("%s: HasValue() = %t", k, k.HasValue())
		}
	}
	if ListKind.HasValue() {
		t.Errorf("list kind has no value")
	}
}
