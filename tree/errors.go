package tree

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError is returned when a tree is malformed. It is always
// raised before any search runs.
type ConfigurationError struct {
	Node   string // name of the offending node, may be empty
	Reason string
}

func (err *ConfigurationError) Error() string {
	if err.Node == "" {
		return fmt.Sprintf("malformed tree: %s", err.Reason)
	}
	return fmt.Sprintf("malformed tree at %q: %s", err.Node, err.Reason)
}

// ConfigurationErrorf returns a *ConfigurationError for the named node, with
// a stack trace attached.
func ConfigurationErrorf(node, format string, args ...interface{}) error {
	return errors.WithStack(&ConfigurationError{Node: node, Reason: fmt.Sprintf(format, args...)})
}

// IsConfigurationError returns true if err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}
