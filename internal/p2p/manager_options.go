package p2p

import "time"

type ManagerOption func(*Manager)

func WithDialer(dialer Dialer) ManagerOption {
	return func(m *Manager) {
		m.dialer = dialer
	}
}

func WithConnectTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.connectTimeout = d
	}
}

// WithWriteQueueSize sets how many messages can be queued per connection before reads are paused.
func WithWriteQueueSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.writeQueueSize = size
		}
	}
}

func WithReadBufferSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.readBufferSize = size
		}
	}
}
