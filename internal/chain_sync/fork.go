package chain_sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/wire"
	"github.com/patrickmn/go-cache"
)

var (
	ErrHeaderFetch       = errors.New("failed to fetch block header")
	ErrNoCommonAncestor  = errors.New("no common ancestor found")
	ErrHeaderUnconverted = errors.New("failed to convert block header")
)

type StepKind int

const (
	DisconnectBlock StepKind = iota
	ConnectBlock
)

func (k StepKind) String() string {
	if k == DisconnectBlock {
		return "disconnect"
	}
	return "connect"
}

// BlockHeaderSummary is the part of a block header needed to walk the chain.
type BlockHeaderSummary struct {
	Hash              string
	PreviousBlockHash string
	Height            uint32
	Header            *wire.BlockHeader
}

type ForkStep struct {
	Kind  StepKind
	Block *BlockHeaderSummary
}

func (s *Syncer) header(ctx context.Context, hash string) (*BlockHeaderSummary, error) {
	if cached, found := s.headerCache.Get(hash); found {
		return cached.(*BlockHeaderSummary), nil
	}

	res, err := s.client.GetBlockHeader(ctx, hash)
	if err != nil {
		return nil, errors.Join(ErrHeaderFetch, err)
	}

	wireHeader, err := res.WireHeader()
	if err != nil {
		return nil, errors.Join(ErrHeaderUnconverted, err)
	}

	summary := &BlockHeaderSummary{
		Hash:              hash,
		PreviousBlockHash: res.PreviousBlockHash,
		Height:            res.Height,
		Header:            wireHeader,
	}
	s.headerCache.Set(hash, summary, cache.DefaultExpiration)

	return summary, nil
}

// FindFork walks back from both tips until they meet. Disconnect steps for the old
// chain and connect steps for the new chain are each emitted height-descending.
// The common ancestor itself is never part of the result.
func (s *Syncer) FindFork(ctx context.Context, oldHash, newHash string) ([]ForkStep, error) {
	if oldHash == newHash {
		return nil, nil
	}

	cur, err := s.header(ctx, newHash)
	if err != nil {
		return nil, err
	}

	if cur.PreviousBlockHash == oldHash {
		return []ForkStep{{Kind: ConnectBlock, Block: cur}}, nil
	}

	s.logger.Info("Found non consecutive blocks, scanning for fork", slog.String("old", oldHash), slog.String("new", newHash))

	tgt, err := s.header(ctx, oldHash)
	if err != nil {
		return nil, err
	}

	// steps back from h, returning the known side when the parent is already at hand
	parent := func(h *BlockHeaderSummary, other *BlockHeaderSummary) (*BlockHeaderSummary, error) {
		if h.PreviousBlockHash == other.Hash {
			return other, nil
		}
		if h.PreviousBlockHash == "" {
			return nil, fmt.Errorf("%w: reached genesis at %s", ErrNoCommonAncestor, h.Hash)
		}

		return s.header(ctx, h.PreviousBlockHash)
	}

	var steps []ForkStep
	for cur.Hash != tgt.Hash {
		switch {
		case cur.Height > tgt.Height:
			steps = append(steps, ForkStep{Kind: ConnectBlock, Block: cur})
			cur, err = parent(cur, tgt)
		case tgt.Height > cur.Height:
			steps = append(steps, ForkStep{Kind: DisconnectBlock, Block: tgt})
			tgt, err = parent(tgt, cur)
		default:
			steps = append(steps, ForkStep{Kind: DisconnectBlock, Block: tgt}, ForkStep{Kind: ConnectBlock, Block: cur})

			if cur.Height <= 1 || cur.PreviousBlockHash == tgt.PreviousBlockHash {
				// both chains share the parent, height 1 always shares genesis
				return steps, nil
			}

			cur, err = parent(cur, tgt)
			if err != nil {
				return nil, err
			}
			tgt, err = parent(tgt, cur)
		}
		if err != nil {
			return nil, err
		}
	}

	return steps, nil
}

// orderForReplay returns disconnects from the tip down followed by connects from
// the fork point up.
func orderForReplay(steps []ForkStep) []ForkStep {
	ordered := make([]ForkStep, 0, len(steps))
	for _, step := range steps {
		if step.Kind == DisconnectBlock {
			ordered = append(ordered, step)
		}
	}

	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Kind == ConnectBlock {
			ordered = append(ordered, steps[i])
		}
	}

	return ordered
}
