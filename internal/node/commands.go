package node

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
	"github.com/bitcoin-sv/lnbridge/internal/p2p"
)

const defaultFinalCltvExpiry = 9

var (
	ErrInvalidNodeID      = errors.New("invalid node id")
	ErrInvalidChannelID   = errors.New("invalid channel id")
	ErrInvalidPaymentHash = errors.New("invalid payment hash")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrCommandFailed      = errors.New("command failed")
)

type Invoice struct {
	PaymentHash engine.PaymentHash
	AmountMsat  uint64
}

func (n *Node) ConnectPeer(ctx context.Context, address string) error {
	if !n.isStarted() {
		return ErrNotStarted
	}

	nodeAddress, err := p2p.ParseNodeAddress(address)
	if err != nil {
		return err
	}

	_, err = n.peers.ConnectOutbound(ctx, nodeAddress.NodeID, nodeAddress.Addr)
	if err != nil {
		return err
	}

	n.dispatcher.Signal()
	return nil
}

func (n *Node) ListPeers() []string {
	if !n.isStarted() {
		return nil
	}

	return n.peers.ListPeers()
}

// FundChannel asks the engine to open a channel. The funding transaction is created
// by the dispatcher once the peer accepted.
func (n *Node) FundChannel(nodeIDHex string, channelValueSatoshis uint64, pushMsat uint64) error {
	if !n.isStarted() {
		return ErrNotStarted
	}

	nodeID, err := parseNodeID(nodeIDHex)
	if err != nil {
		return err
	}

	if channelValueSatoshis == 0 || pushMsat > channelValueSatoshis*1000 {
		return fmt.Errorf("%w: value %d sat, push %d msat", ErrInvalidAmount, channelValueSatoshis, pushMsat)
	}

	err = n.engine.ChannelManager().CreateChannel(nodeID, channelValueSatoshis, pushMsat, 0)
	if err != nil {
		return errors.Join(ErrCommandFailed, err)
	}

	n.logger.Info("Channel created, sending open_channel", slog.String("node", nodeIDHex))
	n.dispatcher.Signal()

	return nil
}

func (n *Node) CloseChannel(channelIDHex string) error {
	if !n.isStarted() {
		return ErrNotStarted
	}

	channelID, err := engine.ChannelIDFromHex(channelIDHex)
	if err != nil {
		return errors.Join(ErrInvalidChannelID, err)
	}

	err = n.engine.ChannelManager().CloseChannel(channelID)
	if err != nil {
		return errors.Join(ErrCommandFailed, err)
	}

	n.logger.Info("Channel closing", slog.String("channel", channelIDHex))
	n.dispatcher.Signal()

	return nil
}

func (n *Node) ForceCloseAll() error {
	if !n.isStarted() {
		return ErrNotStarted
	}

	n.engine.ChannelManager().ForceCloseAllChannels()
	n.dispatcher.Signal()

	return nil
}

func (n *Node) ListChannels() []engine.ChannelDetails {
	if !n.isStarted() {
		return nil
	}

	return n.engine.ChannelManager().ListChannels()
}

// CreateInvoice stores a new preimage. Encoding the invoice for the payer is left to the caller.
func (n *Node) CreateInvoice(amountMsat uint64) (Invoice, error) {
	if amountMsat == 0 {
		return Invoice{}, ErrInvalidAmount
	}

	hash, _, err := n.invoices.NewPreimage()
	if err != nil {
		return Invoice{}, errors.Join(ErrCommandFailed, err)
	}

	return Invoice{PaymentHash: hash, AmountMsat: amountMsat}, nil
}

// SendPayment pays paymentHashHex to the payee. A zero finalCltvExpiry uses the default of 9 blocks.
func (n *Node) SendPayment(payeeHex string, paymentHashHex string, amountMsat uint64, finalCltvExpiry uint32) error {
	if !n.isStarted() {
		return ErrNotStarted
	}

	payee, err := parseNodeID(payeeHex)
	if err != nil {
		return err
	}

	var paymentHash engine.PaymentHash
	hashBytes, err := hex.DecodeString(paymentHashHex)
	if err != nil || len(hashBytes) != len(paymentHash) {
		return fmt.Errorf("%w: %s", ErrInvalidPaymentHash, paymentHashHex)
	}
	copy(paymentHash[:], hashBytes)

	if amountMsat == 0 {
		return ErrInvalidAmount
	}

	if finalCltvExpiry == 0 {
		finalCltvExpiry = defaultFinalCltvExpiry
	}

	err = n.engine.ChannelManager().SendPayment(payee, paymentHash, amountMsat, finalCltvExpiry)
	if err != nil {
		return errors.Join(ErrCommandFailed, err)
	}

	n.dispatcher.Signal()
	return nil
}

func parseNodeID(nodeIDHex string) ([]byte, error) {
	nodeID, err := p2p.ParseNodeID(nodeIDHex)
	if err != nil {
		return nil, errors.Join(ErrInvalidNodeID, err)
	}

	return nodeID, nil
}
