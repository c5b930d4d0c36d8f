package cli

import "errors"

// errInvalidInput marks a run whose output already explains the problem.
// main exits non-zero without printing it again.
var errInvalidInput = errors.New("invalid input")

// IsReported reports whether err has already been rendered to the user.
func IsReported(err error) bool {
	return errors.Is(err, errInvalidInput)
}
