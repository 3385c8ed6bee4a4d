package app

import (
	"sync"

	"github.com/bft-labs/mineral/pkg/log"
)

// State is the lifecycle state of an App.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// EventEmitter is notified of every state change.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

type lifecycle struct {
	mu      sync.RWMutex
	state   State
	logger  log.Logger
	emitter EventEmitter
}

func newLifecycle(logger log.Logger, emitter EventEmitter) *lifecycle {
	return &lifecycle{state: StateStopped, logger: logger, emitter: emitter}
}

func (l *lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *lifecycle) CanStart() bool {
	s := l.State()
	return s == StateStopped || s == StateCrashed
}

func (l *lifecycle) TransitionTo(next State, reason string) error {
	l.mu.Lock()
	prev := l.state
	if err := checkTransition(prev, next); err != nil {
		l.mu.Unlock()
		return err
	}
	l.state = next
	l.mu.Unlock()

	if l.emitter != nil {
		l.emitter.OnStateChange(prev, next, reason)
	}
	l.logger.Info("app state transition",
		log.String("from", prev.String()),
		log.String("to", next.String()),
		log.String("reason", reason),
	)
	return nil
}

func checkTransition(from, to State) error {
	switch from {
	case StateStopped, StateCrashed:
		if to != StateStarting {
			return ErrNotRunning
		}
	case StateStarting:
		if to != StateRunning && to != StateCrashed {
			return ErrAlreadyRunning
		}
	case StateRunning:
		if to != StateStopping && to != StateCrashed {
			return ErrAlreadyRunning
		}
	case StateStopping:
		if to != StateStopped && to != StateCrashed {
			return ErrAlreadyRunning
		}
	}
	return nil
}
