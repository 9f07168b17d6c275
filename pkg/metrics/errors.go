package metrics

import "errors"

var (
	ErrMonitorStarted    = errors.New("metrics: monitor already started")
	ErrMonitorNotStarted = errors.New("metrics: monitor not started")
)
