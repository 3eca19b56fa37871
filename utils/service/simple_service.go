package service

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceAlreadyStopped = errors.New("service already stopped")
)

type SimpleService struct {
	cancel      context.CancelFunc
	closeChan   <-chan struct{}
	stopped     bool
	mu          sync.Mutex
	startStopCb StartStopCallback
}

func NewSimpleService(startStopCb StartStopCallback) *SimpleService {
	return &SimpleService{
		startStopCb: startStopCb,
	}
}

func (s *SimpleService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrServiceAlreadyStopped
	}
	if s.closeChan != nil {
		return ErrServiceAlreadyStarted
	}
	wrappedCtx, cancel := context.WithCancel(ctx)
	if err := s.startStopCb.OnStart(wrappedCtx); err != nil {
		cancel()
		return err
	}
	s.cancel = cancel
	s.closeChan = wrappedCtx.Done()
	go func() {
		<-wrappedCtx.Done()
		s.Stop()
	}()
	return nil
}

func (s *SimpleService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeChan != nil && !s.stopped
}

// Serve blocks until the service stops. It returns at once if the service
// was never started.
func (s *SimpleService) Serve() {
	s.mu.Lock()
	ch := s.closeChan
	s.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (s *SimpleService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closeChan == nil || s.stopped {
		return
	}
	s.stopped = true
	s.startStopCb.OnStop()
	s.cancel()
}

// Done is closed once the service stops. It is nil before Start.
func (s *SimpleService) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeChan
}
