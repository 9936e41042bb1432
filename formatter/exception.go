package formatter

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// maxCauseDepth bounds the cause chain so a cyclic Unwrap cannot hang
// the caller.
const maxCauseDepth = 32

// FormatException renders err as "<type>: <message>", followed by one
// indented "caused by" line per wrapped error. Errors combined with
// multierr or errors.Join fan out into one branch per member.
// A nil error renders as the empty string.
func FormatException(err error) string {
	if err == nil {
		return ""
	}
	var sb strings.Builder
	writeException(&sb, err, 0)
	return sb.String()
}

func writeException(sb *strings.Builder, err error, depth int) {
	if depth > 0 {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("caused by ")
	}
	fmt.Fprintf(sb, "%T: %s", err, err.Error())

	if depth >= maxCauseDepth {
		return
	}

	if members := causes(err); len(members) > 0 {
		for _, m := range members {
			if m != nil {
				writeException(sb, m, depth+1)
			}
		}
		return
	}
	if next := errors.Unwrap(err); next != nil {
		writeException(sb, next, depth+1)
	}
}

// causes returns the members of a combined error, or nil.
func causes(err error) []error {
	if errs := multierr.Errors(err); len(errs) > 1 {
		return errs
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return nil
}
