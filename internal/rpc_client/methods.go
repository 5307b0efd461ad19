package rpc_client

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// RPCErrVerifyAlreadyInChain is returned by sendrawtransaction for a tx that is already mined.
const RPCErrVerifyAlreadyInChain = -27

type BlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               uint32  `json:"blocks"`
	Headers              uint32  `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
}

type BlockHeader struct {
	Hash              string `json:"hash"`
	Confirmations     int64  `json:"confirmations"`
	Height            uint32 `json:"height"`
	Version           int32  `json:"version"`
	MerkleRoot        string `json:"merkleroot"`
	Time              int64  `json:"time"`
	Nonce             uint32 `json:"nonce"`
	Bits              string `json:"bits"`
	PreviousBlockHash string `json:"previousblockhash"`
}

// WireHeader converts the verbose header into its consensus form. The genesis
// header has an empty previous hash which maps to the zero hash.
func (h BlockHeader) WireHeader() (*wire.BlockHeader, error) {
	var prevHash chainhash.Hash
	if h.PreviousBlockHash != "" {
		p, err := chainhash.NewHashFromStr(h.PreviousBlockHash)
		if err != nil {
			return nil, errors.Join(ErrMalformedResponse, err)
		}
		prevHash = *p
	}

	merkleRoot, err := chainhash.NewHashFromStr(h.MerkleRoot)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	bits, err := strconv.ParseUint(h.Bits, 16, 32)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	return &wire.BlockHeader{
		Version:    h.Version,
		PrevBlock:  prevHash,
		MerkleRoot: *merkleRoot,
		Timestamp:  time.Unix(h.Time, 0),
		Bits:       uint32(bits),
		Nonce:      h.Nonce,
	}, nil
}

type FundResult struct {
	Hex       string  `json:"hex"`
	Fee       float64 `json:"fee"`
	ChangePos int     `json:"changepos"`
}

type SignResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

type SmartFeeResult struct {
	FeeRate *float64 `json:"feerate"`
	Blocks  int      `json:"blocks"`
	Errors  []string `json:"errors"`
}

func (c *Client) GetBlockchainInfo(ctx context.Context) (BlockchainInfo, error) {
	return callResult[BlockchainInfo](ctx, c, "getblockchaininfo", false)
}

func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	return callResult[string](ctx, c, "getbestblockhash", false)
}

func (c *Client) GetBlockHeader(ctx context.Context, hash string) (BlockHeader, error) {
	// a missing previousblockhash (genesis) stays empty
	return callResult[BlockHeader](ctx, c, "getblockheader", false, Quote(hash))
}

func (c *Client) GetBlock(ctx context.Context, hash string) (*wire.MsgBlock, error) {
	blockHex, err := callResult[string](ctx, c, "getblock", false, Quote(hash), "0")
	if err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(blockHex)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	block := &wire.MsgBlock{}
	err = block.Deserialize(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("failed to decode block %s: %w", hash, err))
	}

	return block, nil
}

// CreateRawTransaction creates an unfunded transaction paying amount to address.
func (c *Client) CreateRawTransaction(ctx context.Context, address string, amount btcutil.Amount) (string, error) {
	outputs, err := json.Marshal(map[string]json.Number{
		address: json.Number(strconv.FormatFloat(amount.ToBTC(), 'f', 8, 64)),
	})
	if err != nil {
		return "", err
	}

	return callResult[string](ctx, c, "createrawtransaction", false, "[]", string(outputs))
}

func (c *Client) FundRawTransaction(ctx context.Context, txHex string) (FundResult, error) {
	return callResult[FundResult](ctx, c, "fundrawtransaction", false, Quote(txHex))
}

func (c *Client) SignRawTransactionWithWallet(ctx context.Context, txHex string) (SignResult, error) {
	return callResult[SignResult](ctx, c, "signrawtransactionwithwallet", false, Quote(txHex))
}

// SendRawTransaction broadcasts a serialized transaction and returns its txid.
func (c *Client) SendRawTransaction(ctx context.Context, txHex string, mayFail bool) (string, error) {
	return callResult[string](ctx, c, "sendrawtransaction", mayFail, Quote(txHex))
}

func (c *Client) EstimateSmartFee(ctx context.Context, confTarget int, mode string) (SmartFeeResult, error) {
	return callResult[SmartFeeResult](ctx, c, "estimatesmartfee", false, strconv.Itoa(confTarget), Quote(mode))
}

func (c *Client) ImportPrivKey(ctx context.Context, wif string, label string, rescan bool) error {
	_, err := c.call(ctx, "importprivkey", false, []string{Quote(wif), Quote(label), strconv.FormatBool(rescan)})
	return err
}

// IsAlreadyInChain reports whether err is the daemon rejecting a tx that is already mined.
func IsAlreadyInChain(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == RPCErrVerifyAlreadyInChain
}
