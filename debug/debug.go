package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Session bool
	Diff    bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Session = boolEnv("YDIFF_DEBUG_SESSION")
	d.Diff = boolEnv("YDIFF_DEBUG_DIFF")
	d.Parse = boolEnv("YDIFF_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Session() bool {
	return d.Session
}
func Diff() bool {
	return d.Diff
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
