package errhandler

import (
	"unicode"

	"github.com/pterm/pterm"
)

// HandleError renders an error for the user on stderr. The exit code is
// the caller's decision.
func HandleError(err error) {
	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
