package frame

import "errors"

var (
	// ErrInvalidArgument reports a bad parameter: conflicting periods and
	// frequency, an unknown fill method or a negative limit.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedAxis reports an axis outside {RowAxis, ColumnAxis}, or an
	// operation that is only defined on the row axis.
	ErrUnsupportedAxis = errors.New("unsupported axis")

	// ErrShapeMismatch reports columns of unequal length or labels that do not
	// match the data.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDuplicateLabels reports a reindex from an index with repeated labels.
	ErrDuplicateLabels = errors.New("cannot reindex from an index with duplicate labels")

	// ErrNotTemporal reports a frequency operation on a non-time index.
	ErrNotTemporal = errors.New("index is not temporal")
)
