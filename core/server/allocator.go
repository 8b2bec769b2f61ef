package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"
)

var (
	// ErrNoPortAvailable is returned when no port in the range could be bound.
	ErrNoPortAvailable = errors.New("no port available")
	// ErrInvalidPortRange is returned for an empty or out-of-bounds range.
	ErrInvalidPortRange = errors.New("invalid port range")
)

// ListenFunc binds a listener. It matches net.Listen.
type ListenFunc func(network, address string) (net.Listener, error)

// Allocator finds the first bindable port in a range.
type Allocator struct {
	cfg    Config
	logger *zap.Logger
	listen ListenFunc
}

// NewAllocator creates an allocator over cfg's port range.
func NewAllocator(cfg Config, logger *zap.Logger) *Allocator {
	return &Allocator{cfg: cfg, logger: logger, listen: net.Listen}
}

// WithListenFunc replaces the bind function, mainly for tests.
func (a *Allocator) WithListenFunc(fn ListenFunc) *Allocator {
	a.listen = fn
	return a
}

// Allocate binds the first free port from BasePort through MaxPort and returns the
// listener. Occupied ports are logged and skipped. When the whole range is busy one
// last attempt is made at MaxPort; if that fails too, MaxPort is returned together
// with ErrNoPortAvailable.
func (a *Allocator) Allocate() (net.Listener, int, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, 0, err
	}

	for port := a.cfg.BasePort; port <= a.cfg.MaxPort; port++ {
		ln, err := a.listen("tcp", a.address(port))
		if err == nil {
			a.logger.Info("Selected port", zap.String("address", a.address(port)))
			return ln, port, nil
		}
		a.logger.Warn("Port is occupied", zap.Int("port", port), zap.Error(err))
	}

	port := a.cfg.MaxPort
	ln, err := a.listen("tcp", a.address(port))
	if err != nil {
		return nil, port, fmt.Errorf("%w: %s: %v", ErrNoPortAvailable, a.address(port), err)
	}
	a.logger.Info("Selected port", zap.String("address", a.address(port)))
	return ln, port, nil
}

func (a *Allocator) address(port int) string {
	return net.JoinHostPort(a.cfg.Host, strconv.Itoa(port))
}
