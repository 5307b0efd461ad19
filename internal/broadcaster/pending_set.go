package broadcaster

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// PendingSet holds serialized transactions by txid.
type PendingSet struct {
	mu  sync.Mutex
	txs map[chainhash.Hash][]byte
}

func NewPendingSet() *PendingSet {
	return &PendingSet{txs: make(map[chainhash.Hash][]byte)}
}

func (p *PendingSet) Insert(txid chainhash.Hash, raw []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.txs[txid] = raw
}

func (p *PendingSet) Remove(txid chainhash.Hash) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	raw, found := p.txs[txid]
	if found {
		delete(p.txs, txid)
	}

	return raw, found
}

// Snapshot returns a copy of the set.
func (p *PendingSet) Snapshot() map[chainhash.Hash][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := make(map[chainhash.Hash][]byte, len(p.txs))
	for txid, raw := range p.txs {
		snapshot[txid] = raw
	}

	return snapshot
}

func (p *PendingSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.txs)
}
