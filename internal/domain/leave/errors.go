package leave

import "errors"

var (
	ErrInvalidDateRange = errors.New("leave request ends before it starts")
)
