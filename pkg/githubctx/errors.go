package githubctx

import (
	"encoding/json"
	"errors"

	"github.com/gravitational/trace"
)

// IsParseError reports whether err was caused by an event payload file that
// exists but does not contain valid JSON. Missing payload paths are reported
// separately via trace.IsNotFound.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	orig := trace.Unwrap(err)
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(orig, &syntaxErr) || errors.As(orig, &typeErr)
}
