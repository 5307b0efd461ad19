package p2p

import (
	"context"
	"log/slog"
	"net"
	"sync"

	"go.uber.org/atomic"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
)

type State int32

const (
	Active State = iota
	Paused
	Disconnecting
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Disconnecting:
		return "disconnecting"
	}

	return "unknown"
}

var _ engine.SocketDescriptor = (*Connection)(nil)

var connectionIDs atomic.Uint64

// Connection is a TCP connection to a peer. The pointer is the descriptor the
// engine keeps in its peer table; it stays valid after the socket is closed.
type Connection struct {
	id      uint64
	conn    net.Conn
	manager *Manager
	logger  *slog.Logger

	writeCh   chan []byte
	drainedCh chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	execWg    sync.WaitGroup

	mu                  sync.Mutex
	state               State
	readPaused          bool
	pendingRead         []byte
	readBlocker         chan struct{}
	resuming            bool
	resumeAgain         bool
	flushing            bool
	flushWg             sync.WaitGroup
	disconnectRequested bool
	skipDisconnectEvent bool
}

func newConnection(m *Manager, conn net.Conn) *Connection {
	id := connectionIDs.Inc()

	return &Connection{
		id:      id,
		conn:    conn,
		manager: m,
		logger: m.logger.With(
			slog.Group("peer",
				slog.Uint64("id", id),
				slog.String("address", remoteAddr(conn)),
			),
		),
		writeCh:   make(chan []byte, m.writeQueueSize),
		drainedCh: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

func (c *Connection) ID() uint64 {
	return c.id
}

func (c *Connection) String() string {
	return remoteAddr(c.conn)
}

func remoteAddr(conn net.Conn) string {
	addr := conn.RemoteAddr()
	if addr == nil {
		return "unknown"
	}

	return addr.String()
}

func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// start runs the writer and the reader of the connection.
func (c *Connection) start() {
	c.execWg.Add(2)
	go c.writeLoop()
	go c.readLoop()
}

// SendData queues data for writing. It returns len(data) if the data was queued
// and 0 if the write queue is full or the connection is closed. A full queue
// pauses reading until the queue has been written out.
func (c *Connection) SendData(data []byte, resumeRead bool) int {
	sent, flush := c.enqueue(data)

	if resumeRead {
		c.scheduleResume()
	}

	if flush {
		go func() {
			defer c.flushWg.Done()
			c.flush()
		}()
	}

	return sent
}

func (c *Connection) enqueue(data []byte) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(data) == 0 {
		return 0, false
	}

	if c.state == Disconnecting {
		return 0, false
	}

	if c.flushing {
		c.pause()
		return 0, false
	}

	select {
	case c.writeCh <- data:
		return len(data), false
	default:
		c.pause()
		c.flushing = true
		c.flushWg.Add(1)
		c.logger.Debug("Write queue full, pausing reads")
		return 0, true
	}
}

// pause has to be called with mu held.
func (c *Connection) pause() {
	c.readPaused = true
	if c.state == Active {
		c.state = Paused
	}
}

// DisconnectSocket closes the connection on behalf of the engine. The engine is
// not notified with a DisconnectEvent.
func (c *Connection) DisconnectSocket() {
	c.mu.Lock()
	c.disconnectRequested = true
	c.readPaused = true
	c.state = Disconnecting
	c.mu.Unlock()

	c.logger.Info("Disconnecting peer")
	c.close()
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Connection) spawn(task func()) {
	err := c.manager.spawner.Spawn(task)
	if err != nil {
		c.logger.Error("Failed to spawn connection task", slog.String("err", err.Error()))
	}
}

// flush waits until the writer has emptied the queue and resumes reading.
func (c *Connection) flush() {
	for len(c.writeCh) > 0 {
		select {
		case <-c.done:
			return
		case <-c.drainedCh:
		}
	}

	c.mu.Lock()
	c.flushing = false
	c.mu.Unlock()

	c.resume()
}

func (c *Connection) scheduleResume() {
	c.spawn(c.resume)
}

// resume feeds a chunk buffered while paused to the engine before unblocking the
// reader. Only one resume drains at a time. A resume requested meanwhile makes the
// running one unblock the reader even if the engine asked to pause again.
func (c *Connection) resume() {
	c.mu.Lock()
	if c.resuming {
		c.resumeAgain = true
		c.mu.Unlock()
		return
	}
	c.resuming = true

	for {
		c.resumeAgain = false
		data := c.pendingRead
		c.pendingRead = nil
		if len(data) == 0 {
			break
		}
		c.mu.Unlock()

		// the reader stays blocked, nothing is buffered while the engine handles data
		pause, err := c.manager.handler.ReadEvent(c, data)

		c.mu.Lock()
		if err != nil {
			c.resuming = false
			c.mu.Unlock()

			c.readFailed(err)
			return
		}
		if pause && !c.resumeAgain {
			c.resuming = false
			c.mu.Unlock()
			return
		}
	}

	if c.readBlocker != nil {
		close(c.readBlocker)
		c.readBlocker = nil
	}
	c.readPaused = false
	if c.state == Paused {
		c.state = Active
	}
	c.resuming = false
	c.mu.Unlock()

	c.manager.notifier.Signal()
}

// readFailed drops a connection the engine rejected. The engine already knows, so
// no DisconnectEvent is sent.
func (c *Connection) readFailed(err error) {
	c.logger.Warn("Engine rejected peer data", slog.String("err", err.Error()))

	c.mu.Lock()
	c.skipDisconnectEvent = true
	c.state = Disconnecting
	c.mu.Unlock()

	c.close()
}

func (c *Connection) readLoop() {
	defer c.execWg.Done()
	defer c.closed()

	buf := make([]byte, c.manager.readBufferSize)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			if !c.handleChunk(chunk) {
				return
			}
		}

		if err != nil {
			c.logger.Debug("Read loop ended", slog.String("err", err.Error()))
			return
		}
	}
}

// handleChunk returns false if reading has to stop.
func (c *Connection) handleChunk(chunk []byte) bool {
	c.mu.Lock()
	if c.state == Disconnecting {
		c.mu.Unlock()
		return false
	}

	if c.readPaused {
		c.pendingRead = chunk
		blocker := make(chan struct{})
		c.readBlocker = blocker
		c.mu.Unlock()

		c.logger.Log(context.Background(), slogLvlTrace, "Read paused", slog.Int("buffered", len(chunk)))
		select {
		case <-blocker:
			return true
		case <-c.done:
			return false
		}
	}
	c.mu.Unlock()

	pause, err := c.manager.handler.ReadEvent(c, chunk)
	if err != nil {
		c.readFailed(err)
		return false
	}

	if pause {
		c.mu.Lock()
		c.pause()
		c.mu.Unlock()
	}

	c.manager.notifier.Signal()
	return true
}

// closed runs once the read loop ended. Only a close not initiated by us is
// reported to the engine.
func (c *Connection) closed() {
	c.mu.Lock()
	notify := !c.disconnectRequested && !c.skipDisconnectEvent
	c.state = Disconnecting
	c.mu.Unlock()

	c.close()

	if notify {
		c.logger.Info("Peer disconnected")
		c.manager.handler.DisconnectEvent(c)
	}

	c.manager.remove(c)
	c.manager.notifier.Signal()
}

func (c *Connection) writeLoop() {
	defer c.execWg.Done()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.writeCh:
			_, err := c.conn.Write(data)
			if err != nil {
				c.logger.Error("Failed to write to peer", slog.String("err", err.Error()))
				// the read loop reports the disconnect
				c.close()
				return
			}
			c.logger.Log(context.Background(), slogLvlTrace, "Sent", slog.Int("bytes", len(data)))

			if len(c.writeCh) == 0 {
				select {
				case c.drainedCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

// wait blocks until reader, writer and a pending flush have stopped.
func (c *Connection) wait() {
	c.execWg.Wait()
	c.flushWg.Wait()
}
