package cmd

import (
	"slices"
	"strings"
)

// FlagSchema lists which flags a container command understands. Flags in
// WithValue consume the following token; Boolean flags stand alone.
type FlagSchema struct {
	WithValue []string
	Boolean   []string
}

// ClassifyArgs separates the theme path from the tokens forwarded to the
// container tool. The first token that is neither a flag nor a flag's value is
// the path ("." when there is none); every other token is forwarded in order.
// A value is consumed unconditionally after a WithValue flag, even if it looks
// like a flag itself.
func ClassifyArgs(args []string, schema FlagSchema) (path string, pass []string) {
	found := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case slices.Contains(schema.WithValue, arg):
			pass = append(pass, arg)
			if i+1 < len(args) {
				pass = append(pass, args[i+1])
				i++
			}
		case slices.Contains(schema.Boolean, arg):
			pass = append(pass, arg)
		case strings.HasPrefix(arg, "-"):
			pass = append(pass, arg)
		case !found:
			path = arg
			found = true
		default:
			pass = append(pass, arg)
		}
	}
	if !found {
		path = "."
	}
	return path, pass
}

// TakeFlag removes every occurrence of name and its value from args and
// returns the last value. ok is false when name is absent or has no value.
func TakeFlag(args []string, name string) (value string, rest []string, ok bool) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] != name {
			rest = append(rest, args[i])
			continue
		}
		if i+1 < len(args) {
			value, ok = args[i+1], true
			i++
		}
	}
	return value, rest, ok
}
