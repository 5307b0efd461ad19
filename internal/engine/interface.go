package engine

import (
	"io"

	"github.com/btcsuite/btcd/wire"
)

// BlockListener receives chain tip changes in the order they have to be applied.
type BlockListener interface {
	BlockConnected(block *wire.MsgBlock, height uint32)
	BlockDisconnected(header *wire.BlockHeader)
}

type EventsProvider interface {
	GetAndClearPendingEvents() []Event
}

// ChannelManager is the channel-state machine of the engine.
type ChannelManager interface {
	EventsProvider

	FundingTransactionGenerated(temporaryChannelID ChannelID, fundingTxo OutPoint)
	ClaimFunds(preimage PaymentPreimage) bool
	FailHTLCBackwards(paymentHash PaymentHash) bool
	ProcessPendingHTLCForwards()

	CreateChannel(theirNodeID []byte, channelValueSatoshis uint64, pushMsat uint64, userChannelID uint64) error
	CloseChannel(channelID ChannelID) error
	ForceCloseAllChannels()
	ListChannels() []ChannelDetails
	SendPayment(payeeNodeID []byte, paymentHash PaymentHash, amountMsat uint64, finalCltvExpiry uint32) error

	// Write serializes the full manager snapshot.
	Write(w io.Writer) error
}

// SocketDescriptor is the handle the engine keeps in its peer table. Two
// descriptors are the same peer connection iff their IDs match.
type SocketDescriptor interface {
	// SendData queues data for the peer and returns the number of bytes accepted.
	// If resumeRead is set, reading from the peer is resumed.
	SendData(data []byte, resumeRead bool) int
	// DisconnectSocket closes the connection. No DisconnectEvent follows.
	DisconnectSocket()
	ID() uint64
}

// PeerHandler is the byte-oriented peer protocol handler of the engine.
type PeerHandler interface {
	NewInboundConnection(descriptor SocketDescriptor) error
	// NewOutboundConnection returns the initial bytes that have to be sent to the peer.
	NewOutboundConnection(theirNodeID []byte, descriptor SocketDescriptor) ([]byte, error)
	// ReadEvent hands bytes received from the peer to the engine. It returns true if
	// reading from this peer should be paused until SendData is called with resumeRead.
	ReadEvent(descriptor SocketDescriptor, data []byte) (bool, error)
	DisconnectEvent(descriptor SocketDescriptor)
	ProcessEvents()
	GetPeerNodeIDs() [][]byte
}

type FeeEstimator interface {
	EstimateSatPer1000Weight(target ConfirmationTarget) uint64
}

type Broadcaster interface {
	BroadcastTransaction(tx *wire.MsgTx)
}

type MonitorPersister interface {
	PersistMonitor(state MonitorState) error
}

type RestoreArgs struct {
	ManagerData  []byte
	Monitors     []MonitorState
	FeeEstimator FeeEstimator
	Broadcaster  Broadcaster
	Persister    MonitorPersister
}

// Engine bundles the capabilities of an external channel-state engine.
type Engine interface {
	// Restore rebuilds the engine from a manager snapshot and its channel monitors.
	// ManagerData is nil on first start.
	Restore(args RestoreArgs) error
	ChannelManager() ChannelManager
	ChannelMonitor() EventsProvider
	PeerHandler() PeerHandler
	BlockListener() BlockListener
	// ClaimKeys returns WIF encoded keys the chain daemon wallet has to know about.
	ClaimKeys() []ClaimKey
}

type ClaimKey struct {
	WIF   string
	Label string
}
