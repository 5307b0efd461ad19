package engine

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var ErrInvalidOutPoint = errors.New("invalid outpoint")

// OutPoint identifies the funding output of a channel. It is the primary key of
// persisted channel state and never changes once the channel is funded.
type OutPoint struct {
	Txid  chainhash.Hash
	Index uint32
}

func NewOutPoint(txid string, index uint32) (OutPoint, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return OutPoint{}, errors.Join(ErrInvalidOutPoint, err)
	}

	return OutPoint{Txid: *hash, Index: index}, nil
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid.String(), o.Index)
}

// FileName is the name of the file the channel record for this outpoint is stored in.
func (o OutPoint) FileName() string {
	return fmt.Sprintf("%s_%d", o.Txid.String(), o.Index)
}

type ChannelID [32]byte

func (c ChannelID) String() string {
	return hex.EncodeToString(c[:])
}

func ChannelIDFromHex(s string) (ChannelID, error) {
	var id ChannelID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("channel id must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)

	return id, nil
}

type PaymentHash [32]byte

func (p PaymentHash) String() string {
	return hex.EncodeToString(p[:])
}

type PaymentPreimage [32]byte

func (p PaymentPreimage) String() string {
	return hex.EncodeToString(p[:])
}

// ConfirmationTarget is the urgency a fee estimate is requested for.
type ConfirmationTarget int

const (
	Background ConfirmationTarget = iota
	Normal
	HighPriority
)

func (c ConfirmationTarget) String() string {
	switch c {
	case Background:
		return "background"
	case Normal:
		return "normal"
	case HighPriority:
		return "high_priority"
	}

	return "unknown"
}

type ChannelDetails struct {
	ChannelID            ChannelID
	ShortChannelID       *uint64
	RemoteNodeID         []byte
	ChannelValueSatoshis uint64
	IsUsable             bool
}

// MonitorState is the restorable state of a single channel monitor.
type MonitorState struct {
	FundingTxo    OutPoint
	LastBlockHash chainhash.Hash
	Data          []byte
}
