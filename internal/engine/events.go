package engine

import "time"

const (
	KindFundingGenerationReady  = "funding_generation_ready"
	KindFundingBroadcastSafe    = "funding_broadcast_safe"
	KindPaymentReceived         = "payment_received"
	KindPaymentSent             = "payment_sent"
	KindPaymentFailed           = "payment_failed"
	KindPendingHTLCsForwardable = "pending_htlcs_forwardable"
	KindSpendableOutputs        = "spendable_outputs"
)

// Event is emitted by the channel-state engine and drained by the dispatcher.
type Event interface {
	Kind() string
}

type FundingGenerationReady struct {
	TemporaryChannelID   ChannelID
	ChannelValueSatoshis uint64
	OutputScript         []byte
	UserChannelID        uint64
}

func (FundingGenerationReady) Kind() string { return KindFundingGenerationReady }

type FundingBroadcastSafe struct {
	FundingTxo    OutPoint
	UserChannelID uint64
}

func (FundingBroadcastSafe) Kind() string { return KindFundingBroadcastSafe }

type PaymentReceived struct {
	PaymentHash PaymentHash
	AmountMsat  uint64
}

func (PaymentReceived) Kind() string { return KindPaymentReceived }

type PaymentSent struct {
	PaymentPreimage PaymentPreimage
}

func (PaymentSent) Kind() string { return KindPaymentSent }

type PaymentFailed struct {
	PaymentHash    PaymentHash
	RejectedByDest bool
}

func (PaymentFailed) Kind() string { return KindPaymentFailed }

// PendingHTLCsForwardable asks for ProcessPendingHTLCForwards to be called
// after TimeForwardable has elapsed.
type PendingHTLCsForwardable struct {
	TimeForwardable time.Duration
}

func (PendingHTLCsForwardable) Kind() string { return KindPendingHTLCsForwardable }

type SpendableOutputKind int

const (
	StaticOutput SpendableOutputKind = iota
	DynamicOutputP2WSH
	DynamicOutputP2WPKH
)

type SpendableOutput struct {
	Kind     SpendableOutputKind
	OutPoint OutPoint
	Value    uint64
}

type SpendableOutputs struct {
	Outputs []SpendableOutput
}

func (SpendableOutputs) Kind() string { return KindSpendableOutputs }
