package notation

import (
	"strings"

	"github.com/fatih/color"
)

// Role classifies a rendered token for coloring.
type Role int

const (
	RoleVariable Role = iota
	RoleConstant
	RoleSymbol
	RoleConnective
	RoleQuantifier
	RoleBracket
)

// Colors maps token roles to ANSI styling functions. Roles without an
// entry use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Role]func(string, ...any) string
}

// NewColors returns the terminal palette used by the command line tool.
// Whether escapes are emitted follows color.NoColor.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Role]func(string, ...any) string{
			RoleVariable:   color.RGB(128, 216, 236).SprintfFunc(),
			RoleConstant:   color.RGB(8, 196, 16).SprintfFunc(),
			RoleSymbol:     color.RGB(196, 96, 16).SprintfFunc(),
			RoleConnective: color.RGB(255, 0, 196).SprintfFunc(),
			RoleQuantifier: color.MagentaString,
			RoleBracket:    color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color styles s for role r.
func (c *Colors) Color(r Role, s string) string {
	return c.Get(r)(s)
}

// Get returns the styling function for role r.
func (c *Colors) Get(r Role) func(string, ...any) string {
	f := c.Map[r]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
