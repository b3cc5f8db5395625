package ast

import (
	"slices"
	"strings"
)

type Node struct {
	Kind      Kind
	Value     string
	Modifiers Modifiers
	Comment   string
	Fields    []Field
}

// Field is a named child position of a node.  A slot field holds at most
// one node in Node; a list field holds its members in Items.
type Field struct {
	Name  string
	List  bool
	Node  *Node
	Items []*Node
}

func New(k Kind) *Node {
	return &Node{Kind: k}
}

func FromValue(k Kind, v string) *Node {
	return &Node{Kind: k, Value: v}
}

func Name(v string) *Node {
	return FromValue(NameKind, v)
}

func QualifiedName(v string) *Node {
	return FromValue(QualifiedNameKind, v)
}

func (n *Node) WithSlot(name string, child *Node) *Node {
	n.Fields = append(n.Fields, Field{Name: name, Node: child})
	return n
}

func (n *Node) WithList(name string, items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	n.Fields = append(n.Fields, Field{Name: name, List: true, Items: items})
	return n
}

func (n *Node) WithModifiers(ms ...string) *Node {
	n.Modifiers = NewModifiers(ms...)
	return n
}

func (n *Node) WithComment(c string) *Node {
	n.Comment = c
	return n
}

// FieldIndex returns the index of the field called name, or -1.
func (n *Node) FieldIndex(name string) int {
	for i := range n.Fields {
		if n.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the node in the slot called name.
func Get(n *Node, name string) *Node {
	i := n.FieldIndex(name)
	if i == -1 || n.Fields[i].List {
		return nil
	}
	return n.Fields[i].Node
}

// Items returns the members of the list field called name.
func Items(n *Node, name string) []*Node {
	i := n.FieldIndex(name)
	if i == -1 || !n.Fields[i].List {
		return nil
	}
	return n.Fields[i].Items
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Kind:      n.Kind,
		Value:     n.Value,
		Modifiers: slices.Clone(n.Modifiers),
		Comment:   n.Comment,
		Fields:    make([]Field, len(n.Fields)),
	}
	for i := range n.Fields {
		f := &n.Fields[i]
		dst := &res.Fields[i]
		dst.Name = f.Name
		dst.List = f.List
		if !f.List {
			dst.Node = f.Node.Clone()
			continue
		}
		dst.Items = make([]*Node, len(f.Items))
		for j, item := range f.Items {
			dst.Items[j] = item.Clone()
		}
	}
	return res
}

// Visit calls f on n before (isPost false) and after (isPost true) its
// children, in field order.  Children are skipped when the pre call
// returns false.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for i := range n.Fields {
			fld := &n.Fields[i]
			if !fld.List {
				if fld.Node == nil {
					continue
				}
				if err := fld.Node.Visit(f); err != nil {
					return err
				}
				continue
			}
			for _, item := range fld.Items {
				if err := item.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Text concatenates the values of the subtree at n in pre-order,
// separated by spaces.  It identifies short subtrees such as imports.
func Text(n *Node) string {
	var parts []string
	_ = n.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost && y.Value != "" {
			parts = append(parts, y.Value)
		}
		return true, nil
	})
	return strings.Join(parts, " ")
}
