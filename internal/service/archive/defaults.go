package archive

import "time"

const (
	defaultFlushSize     = 100
	defaultFlushInterval = 2 * time.Second
	defaultFlushRPS      = 20
)
