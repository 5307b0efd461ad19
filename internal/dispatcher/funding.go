package dispatcher

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
)

var (
	ErrNotWitnessScript    = errors.New("funding output script is not a witness program")
	ErrFundingRPC          = errors.New("funding rpc call failed")
	ErrUnexpectedChangePos = errors.New("unexpected change position")
	ErrIncompleteSignature = errors.New("wallet did not fully sign funding transaction")
	ErrDecodeFundingTx     = errors.New("failed to decode funding transaction")
)

// fundingAddress converts the output script requested by the engine into an address the wallet can pay to.
func (d *Dispatcher) fundingAddress(script []byte) (string, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.chainParams)
	if err != nil {
		return "", errors.Join(ErrNotWitnessScript, err)
	}

	switch class {
	case txscript.WitnessV0ScriptHashTy, txscript.WitnessV0PubKeyHashTy, txscript.WitnessV1TaprootTy:
	default:
		return "", fmt.Errorf("%w: script class %s", ErrNotWitnessScript, class)
	}

	if len(addrs) != 1 {
		return "", fmt.Errorf("%w: %d addresses", ErrNotWitnessScript, len(addrs))
	}

	return addrs[0].EncodeAddress(), nil
}

func (d *Dispatcher) handleFundingGenerationReady(ctx context.Context, e engine.FundingGenerationReady) error {
	ctx, cancel := context.WithTimeout(ctx, d.rpcTimeout)
	defer cancel()

	address, err := d.fundingAddress(e.OutputScript)
	if err != nil {
		return err
	}

	rawHex, err := d.client.CreateRawTransaction(ctx, address, btcutil.Amount(e.ChannelValueSatoshis))
	if err != nil {
		return errors.Join(ErrFundingRPC, err)
	}

	funded, err := d.client.FundRawTransaction(ctx, rawHex)
	if err != nil {
		return errors.Join(ErrFundingRPC, err)
	}

	if funded.ChangePos != 0 && funded.ChangePos != 1 {
		return fmt.Errorf("%w: %d", ErrUnexpectedChangePos, funded.ChangePos)
	}

	signed, err := d.client.SignRawTransactionWithWallet(ctx, funded.Hex)
	if err != nil {
		return errors.Join(ErrFundingRPC, err)
	}

	if !signed.Complete {
		return ErrIncompleteSignature
	}

	raw, err := hex.DecodeString(signed.Hex)
	if err != nil {
		return errors.Join(ErrDecodeFundingTx, err)
	}

	tx := &wire.MsgTx{}
	err = tx.Deserialize(bytes.NewReader(raw))
	if err != nil {
		return errors.Join(ErrDecodeFundingTx, err)
	}

	var index uint32
	if funded.ChangePos == 0 {
		index = 1
	}

	if int(index) >= len(tx.TxOut) {
		return fmt.Errorf("%w: funding output %d missing", ErrDecodeFundingTx, index)
	}

	fundingTxo := engine.OutPoint{Txid: tx.TxHash(), Index: index}

	d.manager.FundingTransactionGenerated(e.TemporaryChannelID, fundingTxo)
	d.funding.Insert(fundingTxo.Txid, raw)
	d.Signal()

	d.logger.Info("Generated funding transaction",
		slog.String("channel", e.TemporaryChannelID.String()),
		slog.String("outpoint", fundingTxo.String()),
	)

	return nil
}
