package activity

import "errors"

var (
	ErrBuildQuery = errors.New("activity.repository: failed to build query")
	ErrExecQuery  = errors.New("activity.repository: failed to execute query")
	ErrScanRow    = errors.New("activity.repository: failed to scan row")
)
