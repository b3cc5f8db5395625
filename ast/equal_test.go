package ast

import "testing"

func TestShallowEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected bool
	}{
		{"same kind no value", New(BlockKind), New(BlockKind), true},
		{"different kinds", New(BlockKind), New(ReturnKind), false},
		{"children ignored",
			New(BlockKind).WithList("stmts", New(ReturnKind)),
			New(BlockKind).WithList("stmts"),
			true},
		{"attributes ignored",
			New(MethodKind).WithModifiers("public").WithComment("// a"),
			New(MethodKind).WithModifiers("private"),
			true},
		{"names equal", Name("x"), Name("x"), true},
		{"names differ", Name("x"), Name("y"), false},
		{"qualified names", QualifiedName("a.b"), QualifiedName("a.c"), false},
		{"int literals", FromValue(IntLiteralKind, "1"), FromValue(IntLiteralKind, "1"), true},
		{"string literals", FromValue(StringLiteralKind, "a"), FromValue(StringLiteralKind, "b"), false},
		{"char literals", FromValue(CharLiteralKind, "a"), FromValue(CharLiteralKind, "a"), true},
		{"bool literals", FromValue(BoolLiteralKind, "true"), FromValue(BoolLiteralKind, "false"), false},
		{"binary operators", FromValue(BinaryKind, "+"), FromValue(BinaryKind, "-"), false},
		{"value ignored for unvalued kind", FromValue(ClassKind, "x"), FromValue(ClassKind, "y"), true},
		{"literal kinds differ", FromValue(IntLiteralKind, "1"), FromValue(FloatLiteralKind, "1"), false},
		{"unknown kinds", New(InvalidKind), New(InvalidKind), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ShallowEqual(test.a, test.b); got != test.expected {
				t.Errorf("ShallowEqual() = %t, want %t", got, test.expected)
			}
			if got := ShallowEqual(test.b, test.a); got != test.expected {
				t.Errorf("ShallowEqual() not symmetric")
			}
		})
	}
}

func TestEqual(t *testing.T) {
	mk := func() *Node {
		return New(ClassKind).
			WithModifiers("public").
			WithSlot("name", Name("A")).
			WithList("members", New(FieldDeclKind).WithSlot("name", Name("f")))
	}
	if !Equal(mk(), mk()) {
		t.Fatal("identical trees should be equal")
	}
	b := mk()
	b.Fields[1].Items[0].Comment = "// c"
	if Equal(mk(), b) {
		t.Error("comments should take part in Equal")
	}
	b = mk()
	b.Fields[0].Name = "id"
	if Equal(mk(), b) {
		t.Error("field names should take part in Equal")
	}
	b = mk()
	b.Fields[1].Items = nil
	if Equal(mk(), b) {
		t.Error("list lengths should take part in Equal")
	}
	if !Equal(nil, nil) || Equal(mk(), nil) {
		t.Error("nil handling")
	}
}
