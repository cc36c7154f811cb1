package activity

import "time"

const (
	defaultInterval    = 5 * time.Second
	defaultProbability = 0.3
)
