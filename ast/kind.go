package ast

import "fmt"

type Kind int

const (
	InvalidKind Kind = iota

	UnitKind
	PackageKind
	ImportKind
	ClassKind
	InterfaceKind
	EnumKind
	FieldDeclKind
	MethodKind
	ConstructorKind
	ParamKind
	VarKind
	TypeKind
	AnnotationKind

	BlockKind
	ExprStmtKind
	ReturnKind
	IfKind
	WhileKind
	ForKind
	BreakKind
	ContinueKind
	ThrowKind
	TryKind
	CatchKind

	CallKind
	NewKind
	FieldAccessKind
	IndexKind
	CastKind
	ConditionalKind
	AssignKind
	BinaryKind
	UnaryKind
	ThisKind

	NameKind
	QualifiedNameKind
	IntLiteralKind
	FloatLiteralKind
	StringLiteralKind
	CharLiteralKind
	BoolLiteralKind
	NullLiteralKind
	OperatorKind

	// ListKind is never produced by a parser. It names the pseudo-node
	// standing for one list field of a node in a flattened tree.
	ListKind
)

var kindNames = map[Kind]string{
	UnitKind:          "Unit",
	PackageKind:       "Package",
	ImportKind:        "Import",
	ClassKind:         "Class",
	InterfaceKind:     "Interface",
	EnumKind:          "Enum",
	FieldDeclKind:     "FieldDecl",
	MethodKind:        "Method",
	ConstructorKind:   "Constructor",
	ParamKind:         "Param",
	VarKind:           "Var",
	TypeKind:          "Type",
	AnnotationKind:    "Annotation",
	BlockKind:         "Block",
	ExprStmtKind:      "ExprStmt",
	ReturnKind:        "Return",
	IfKind:            "If",
	WhileKind:         "While",
	ForKind:           "For",
	BreakKind:         "Break",
	ContinueKind:      "Continue",
	ThrowKind:         "Throw",
	TryKind:           "Try",
	CatchKind:         "Catch",
	CallKind:          "Call",
	NewKind:           "New",
	FieldAccessKind:   "FieldAccess",
	IndexKind:         "Index",
	CastKind:          "Cast",
	ConditionalKind:   "Conditional",
	AssignKind:        "Assign",
	BinaryKind:        "Binary",
	UnaryKind:         "Unary",
	ThisKind:          "This",
	NameKind:          "Name",
	QualifiedNameKind: "QualifiedName",
	IntLiteralKind:    "IntLiteral",
	FloatLiteralKind:  "FloatLiteral",
	StringLiteralKind: "StringLiteral",
	CharLiteralKind:   "CharLiteral",
	BoolLiteralKind:   "BoolLiteral",
	NullLiteralKind:   "NullLiteral",
	OperatorKind:      "Operator",
	ListKind:          "List",
}

var kindsByName = func() map[string]Kind {
	res := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		res[name] = k
	}
	return res
}()

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind returns the kind named s.  The list pseudo kind is not
// accepted since it never occurs in a document.
func ParseKind(s string) (Kind, error) {
	k, ok := kindsByName[s]
	if !ok || k == ListKind {
		return InvalidKind, fmt.Errorf("unrecognized kind %q", s)
	}
	return k, nil
}

// Kinds returns every document kind in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, int(ListKind)-1)
	for k := UnitKind; k < ListKind; k++ {
		res = append(res, k)
	}
	return res
}

// HasValue reports whether nodes of kind k carry a literal value which
// takes part in shallow equality.
func (k Kind) HasValue() bool {
	switch k {
	case NameKind, QualifiedNameKind,
		IntLiteralKind, FloatLiteralKind, StringLiteralKind, CharLiteralKind, BoolLiteralKind,
		OperatorKind, BinaryKind, UnaryKind, AssignKind:
		return true
	default:
		return false
	}
}
