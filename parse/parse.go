// Package parse reads tree documents.
//
// A document is a YAML (or JSON) mapping describing one node.  The keys
// kind, value, modifiers and comment are the node's own attributes; every
// other key, in document order, is a field.  A sequence is a list field, a
// mapping is a slot holding one node and null is an empty slot:
//
//	kind: Class
//	modifiers: [public]
//	comment: // A is an example
//	name: {kind: Name, value: A}
//	members:
//	  - kind: Method
//	    name: {kind: Name, value: run}
//	    body: null
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/format"

	"github.com/goccy/go-yaml"
)

const (
	kindKey      = "kind"
	valueKey     = "value"
	modifiersKey = "modifiers"
	commentKey   = "comment"
)

// IsReserved reports whether name is an attribute key and so cannot name
// a field.
func IsReserved(name string) bool {
	switch name {
	case kindKey, valueKey, modifiersKey, commentKey:
		return true
	}
	return false
}

func Parse(d []byte, opts ...ParseOption) (*ast.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat, comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	if pOpts.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc == nil {
		return nil, ErrEmpty
	}
	p := &parser{opts: pOpts}
	return p.node(doc, "$")
}

// ParseFile reads and parses the document at path.  The format is taken
// from the file extension unless an option sets it.
func ParseFile(path string, opts ...ParseOption) (*ast.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]ParseOption{ParseFormat(format.FromPath(path))}, opts...)
	n, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

type parser struct {
	opts *parseOpts
}

func (p *parser) node(v any, at string) (*ast.Node, error) {
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a mapping, got %s", ErrParse, at, describe(v))
	}
	n := &ast.Node{}
	hasKind := false
	seen := map[string]bool{}
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: key %v is not a string", ErrParse, at, item.Key)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrParse, at, key)
		}
		seen[key] = true
		switch key {
		case kindKey:
			s, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.kind: expected a string, got %s", ErrParse, at, describe(item.Value))
			}
			k, err := ast.ParseKind(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.kind: %w", ErrParse, at, err)
			}
			n.Kind = k
			hasKind = true
		case valueKey:
			s, err := scalar(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.value: %w", ErrParse, at, err)
			}
			n.Value = s
		case modifiersKey:
			ms, err := modifiers(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.modifiers: %w", ErrParse, at, err)
			}
			n.Modifiers = ms
		case commentKey:
			if item.Value == nil {
				continue
			}
			s, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.comment: expected a string, got %s", ErrParse, at, describe(item.Value))
			}
			if p.opts.comments {
				n.Comment = s
			}
		default:
			fld, err := p.field(key, item.Value, at+"."+key)
			if err != nil {
				return nil, err
			}
			n.Fields = append(n.Fields, fld)
		}
	}
	if !hasKind {
		return nil, fmt.Errorf("%w at %s", ErrMissingKind, at)
	}
	return n, nil
}

func (p *parser) field(name string, v any, at string) (ast.Field, error) {
	switch x := v.(type) {
	case nil:
		return ast.Field{Name: name}, nil
	case yaml.MapSlice:
		child, err := p.node(x, at)
		if err != nil {
			return ast.Field{}, err
		}
		return ast.Field{Name: name, Node: child}, nil
	case []any:
		items := make([]*ast.Node, len(x))
		for i, y := range x {
			child, err := p.node(y, fmt.Sprintf("%s[%d]", at, i))
			if err != nil {
				return ast.Field{}, err
			}
			items[i] = child
		}
		return ast.Field{Name: name, List: true, Items: items}, nil
	default:
		return ast.Field{}, fmt.Errorf("%w: %s: expected a mapping, sequence or null, got %s", ErrParse, at, describe(v))
	}
}

func scalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case yaml.MapSlice, []any:
		return "", fmt.Errorf("expected a scalar, got %s", describe(v))
	default:
		return fmt.Sprint(x), nil
	}
}

func modifiers(v any) (ast.Modifiers, error) {
	if v == nil {
		return nil, nil
	}
	xs, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a sequence, got %s", describe(v))
	}
	res := make([]string, len(xs))
	for i, x := range xs {
		s, ok := x.(string)
		if !ok {
			return nil, fmt.Errorf("modifier %d: expected a string, got %s", i, describe(x))
		}
		res[i] = s
	}
	return ast.NewModifiers(res...), nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case yaml.MapSlice:
		return "a mapping"
	case []any:
		return "a sequence"
	default:
		return fmt.Sprintf("%T", v)
	}
}
