package network

import (
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reachability reports whether the device currently has connectivity.
// Core code depends on this interface, never on a shared monitor
// instance, so tests and offline builds can substitute their own.
type Reachability interface {
	IsConnected() bool
}

// Always is a fixed-answer Reachability, useful as a default and in tests.
type Always bool

// IsConnected returns the fixed answer.
func (a Always) IsConnected() bool { return bool(a) }

// Monitor polls connectivity by dialing a probe address on an interval.
type Monitor struct {
	probeAddr    string
	probeTimeout time.Duration
	interval     time.Duration

	mu        sync.RWMutex
	connected bool

	onChange func(connected bool)
	stopCh   chan struct{}
	logger   *zap.Logger
}

// NewMonitor creates a monitor. onChange, if non-nil, is invoked from
// the poll goroutine whenever connectivity flips.
func NewMonitor(probeAddr string, probeTimeout, interval time.Duration, onChange func(bool), logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		probeAddr:    probeAddr,
		probeTimeout: probeTimeout,
		interval:     interval,
		connected:    true,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
}

// Start begins polling in a background goroutine.
func (m *Monitor) Start() {
	go m.loop()
}

// Stop ends polling.
func (m *Monitor) Stop() {
	close(m.stopCh)
}

// IsConnected returns the last observed connectivity state.
func (m *Monitor) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	connected := m.probe()

	m.mu.Lock()
	changed := connected != m.connected
	m.connected = connected
	m.mu.Unlock()

	if changed {
		m.logger.Info("network status changed", zap.Bool("connected", connected))
		if m.onChange != nil {
			m.onChange(connected)
		}
	}
}

func (m *Monitor) probe() bool {
	conn, err := net.DialTimeout("tcp", m.probeAddr, m.probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
