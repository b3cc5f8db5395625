package main

import (
	"strings"

	"github.com/alvawei/smerge-sub000/libdiff"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	PathColor ColorAttr = iota
	DeleteColor
	ReplaceColor
	InsertColor
	AttrColor
	SummaryColor
	SuccessColor
	NoticeColor
	FailureColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			PathColor:    color.RGB(128, 168, 196).SprintfFunc(),
			DeleteColor:  color.RedString,
			ReplaceColor: color.YellowString,
			InsertColor:  color.GreenString,
			AttrColor:    color.CyanString,
			SummaryColor: color.RGB(96, 96, 96).SprintfFunc(),
			SuccessColor: color.New(color.FgGreen, color.Bold).SprintfFunc(),
			NoticeColor:  color.New(color.FgYellow, color.Bold).SprintfFunc(),
			FailureColor: color.New(color.FgRed, color.Bold).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

// NoColors leaves all text as is.
func NoColors() *Colors {
	return &Colors{Default: colorDefault}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

var lineColors = map[libdiff.LineType]ColorAttr{
	libdiff.DeleteLine:    DeleteColor,
	libdiff.ReplaceLine:   ReplaceColor,
	libdiff.InsertLine:    InsertColor,
	libdiff.ModifiersLine: AttrColor,
	libdiff.CommentLine:   AttrColor,
	libdiff.SummaryLine:   SummaryColor,
}

func (c *Colors) Line(ln libdiff.Line) string {
	content := c.Color(lineColors[ln.Type], ln.Content)
	if ln.Path == "" {
		return content
	}
	return c.Color(PathColor, ln.Path) + ": " + content
}
