package collector

import (
	"context"
	"fmt"
)

var (
	ErrCollectorAlreadyRunning = fmt.Errorf("collector is already running")
)

type Collector interface {
	Run(ctx context.Context) ([]error, error)
}
