package p2p

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/spawner"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultWriteQueueSize = 3
	defaultReadBufferSize = 8192
)

var (
	ErrDialFailed        = errors.New("failed to dial peer")
	ErrHandshakeRejected = errors.New("engine rejected connection")
	ErrInitialSend       = errors.New("failed to queue initial message")
	ErrListen            = errors.New("failed to listen for peers")
	ErrManagerStopped    = errors.New("peer manager is stopped")
)

type Notifier interface {
	Signal()
}

type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Manager owns all peer connections and feeds their bytes to the engine.
type Manager struct {
	execWg        sync.WaitGroup
	execCtx       context.Context
	cancelExecCtx context.CancelFunc

	handler  engine.PeerHandler
	notifier Notifier
	spawner  spawner.Spawner
	dialer   Dialer
	logger   *slog.Logger

	connectTimeout time.Duration
	writeQueueSize int
	readBufferSize int

	mu          sync.RWMutex
	connections map[uint64]*Connection
	listener    net.Listener
	stopped     bool
}

func NewManager(handler engine.PeerHandler, notifier Notifier, sp spawner.Spawner, logger *slog.Logger, opts ...ManagerOption) *Manager {
	ctx, cancelFn := context.WithCancel(context.Background())

	m := &Manager{
		execCtx:       ctx,
		cancelExecCtx: cancelFn,

		handler:  handler,
		notifier: notifier,
		spawner:  sp,
		dialer:   &net.Dialer{},
		logger:   logger.With(slog.String("module", "peer-manager")),

		connectTimeout: defaultConnectTimeout,
		writeQueueSize: defaultWriteQueueSize,
		readBufferSize: defaultReadBufferSize,

		connections: make(map[uint64]*Connection),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) add(c *Connection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return ErrManagerStopped
	}

	m.connections[c.id] = c
	return nil
}

func (m *Manager) remove(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.connections, c.id)
}

// SetupInbound registers a connection accepted from a peer.
func (m *Manager) SetupInbound(conn net.Conn) (*Connection, error) {
	c := newConnection(m, conn)

	err := m.handler.NewInboundConnection(c)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrHandshakeRejected, err)
	}

	err = m.add(c)
	if err != nil {
		m.handler.DisconnectEvent(c)
		_ = conn.Close()
		return nil, err
	}

	c.start()
	c.logger.Info("Inbound peer connected")

	return c, nil
}

// SetupOutbound registers a connection to the peer with theirNodeID and sends the
// engine's initial message. The connection is dropped if that message cannot be queued.
func (m *Manager) SetupOutbound(theirNodeID []byte, conn net.Conn) (*Connection, error) {
	c := newConnection(m, conn)

	initial, err := m.handler.NewOutboundConnection(theirNodeID, c)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrHandshakeRejected, err)
	}

	if c.SendData(initial, false) != len(initial) {
		m.handler.DisconnectEvent(c)
		c.close()
		return nil, ErrInitialSend
	}

	err = m.add(c)
	if err != nil {
		m.handler.DisconnectEvent(c)
		c.close()
		return nil, err
	}

	c.start()
	c.logger.Info("Outbound peer connected", slog.String("node", hex.EncodeToString(theirNodeID)))

	return c, nil
}

// ConnectOutbound dials addr and sets up an outbound connection to theirNodeID.
func (m *Manager) ConnectOutbound(ctx context.Context, theirNodeID []byte, addr string) (*Connection, error) {
	dialCtx, cancel := context.WithTimeout(ctx, m.connectTimeout)
	defer cancel()

	conn, err := m.dialer.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		m.logger.Error("Failed to dial peer", slog.String("address", addr), slog.String("err", err.Error()))
		return nil, errors.Join(ErrDialFailed, err)
	}

	return m.SetupOutbound(theirNodeID, conn)
}

// Listen accepts inbound peers on addr until Shutdown is called.
func (m *Manager) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Join(ErrListen, err)
	}

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		_ = listener.Close()
		return ErrManagerStopped
	}
	m.listener = listener
	m.mu.Unlock()

	m.logger.Info("Listening for peers", slog.String("address", listener.Addr().String()))

	m.execWg.Add(1)
	go func() {
		defer m.execWg.Done()

		for {
			conn, err := listener.Accept()
			if err != nil {
				if m.execCtx.Err() != nil {
					return
				}
				if errors.Is(err, net.ErrClosed) {
					return
				}
				m.logger.Error("Failed to accept peer", slog.String("err", err.Error()))
				continue
			}

			_, err = m.SetupInbound(conn)
			if err != nil {
				m.logger.Warn("Failed to set up inbound peer", slog.String("address", remoteAddr(conn)), slog.String("err", err.Error()))
			}
		}
	}()

	return nil
}

func (m *Manager) ListenAddr() net.Addr {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listener == nil {
		return nil
	}

	return m.listener.Addr()
}

// Connections returns the open connections ordered by id.
func (m *Manager) Connections() []*Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	connections := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		connections = append(connections, c)
	}

	sort.Slice(connections, func(i, j int) bool {
		return connections[i].id < connections[j].id
	})

	return connections
}

func (m *Manager) CountConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.connections)
}

// ListPeers returns the hex encoded node ids of the peers the engine completed a handshake with.
func (m *Manager) ListPeers() []string {
	nodeIDs := m.handler.GetPeerNodeIDs()

	peers := make([]string, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		peers = append(peers, hex.EncodeToString(nodeID))
	}

	return peers
}

// Shutdown stops the listener and closes every connection without notifying the engine.
func (m *Manager) Shutdown() {
	m.logger.Info("Shutting down peer manager")

	m.mu.Lock()
	m.stopped = true
	listener := m.listener
	m.mu.Unlock()

	m.cancelExecCtx()
	if listener != nil {
		_ = listener.Close()
	}
	m.execWg.Wait()

	for _, c := range m.Connections() {
		c.DisconnectSocket()
		c.wait()
	}
}

func (m *Manager) String() string {
	return fmt.Sprintf("peer manager (%d connections)", m.CountConnections())
}
