package services

import (
	"context"
	"time"
)

func DBContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	return ctx, cancel
}

/*
RequestContext bounds an outbound catalog call. A zero timeout leaves
the parent's deadline as is.
*/
func RequestContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, timeout)
}
