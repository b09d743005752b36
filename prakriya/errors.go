package prakriya

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNoSuchInflection reports a case, person, or number index outside the
// paradigm. Match with errors.Is.
var ErrNoSuchInflection = errors.New("no such inflection")

// UnsupportedError reports a request along a dimension the pipelines do not
// cover: a stem class, verb class (gaṇa), or tense-mood (lakāra) outside the
// implemented set. Match with errors.As to inspect which dimension failed.
type UnsupportedError struct {
	Dimension string
	Value     string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Dimension, e.Value)
}

func unsupported(dimension, value string) error {
	return errors.WithStack(&UnsupportedError{Dimension: dimension, Value: value})
}
