package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"yaml", YAMLFormat},
		{"y", YAMLFormat},
		{"YML", YAMLFormat},
		{"json", JSONFormat},
		{"j", JSONFormat},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("%s: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %s want %s", test.in, got, test.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a/b.json":  JSONFormat,
		"b.yaml":    YAMLFormat,
		"b.yml":     YAMLFormat,
		"b":         YAMLFormat,
		"b.tree":    YAMLFormat,
		"dir.json/": YAMLFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("%s: got %s want %s", path, got, want)
		}
	}
}

func TestFromExt(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.json", JSONFormat, true},
		{"out.YML", YAMLFormat, true},
		{"out.tree", YAMLFormat, false},
		{"-", YAMLFormat, false},
	}
	for _, test := range tests {
		got, ok := FromExt(test.path)
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("%s: got %s %t want %s %t", test.path, got, ok, test.want, test.ok)
		}
	}
}

func TestText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
}
