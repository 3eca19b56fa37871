package service

import (
	"context"
)

type Service interface {
	Start(ctx context.Context) error
	IsRunning() bool
	Serve()
	Stop()
	Done() <-chan struct{}
}

// StartStopCallback receives a context that is cancelled when the service
// stops, either through Stop or through the context given to Start.
type StartStopCallback interface {
	OnStart(ctx context.Context) error
	OnStop()
}
