package encode

import (
	"github.com/fatih/color"

	"github.com/ydiff-project/ydiff/libdiff"
)

type config struct {
	colors *Colors
	indent string
}

type EncodeOption func(*config)

// EncodeColors renders diff markers and values with the given colors;
// without it output is plain text.
func EncodeColors(c *Colors) EncodeOption {
	return func(cfg *config) {
		cfg.colors = c
	}
}

// EncodeIndent sets the per-level indentation (default two spaces).
func EncodeIndent(s string) EncodeOption {
	return func(cfg *config) {
		cfg.indent = s
	}
}

// Colors maps each diff classification to a sprintf-style colorizer.
type Colors struct {
	Default func(string, ...any) string
	Map     map[libdiff.DiffType]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: fmtDefault,
		Map: map[libdiff.DiffType]func(string, ...any) string{
			libdiff.Added:    color.GreenString,
			libdiff.Deleted:  color.RedString,
			libdiff.Modified: color.YellowString,
		},
	}
}

func fmtDefault(s string, args ...any) string {
	return color.New().Sprintf(s, args...)
}

func (c *Colors) colorize(dt libdiff.DiffType, s string, args ...any) string {
	if f, ok := c.Map[dt]; ok {
		return f(s, args...)
	}
	return c.Default(s, args...)
}
