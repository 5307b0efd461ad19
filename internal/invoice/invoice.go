package invoice

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"go.etcd.io/bbolt"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
)

const DefaultFileName = "preimages.db"

var (
	bucketPreimages = []byte("preimages")

	ErrOpenStore       = errors.New("failed to open preimage store")
	ErrRandom          = errors.New("failed to generate preimage")
	ErrStoreOperation  = errors.New("preimage store operation failed")
	ErrCorruptPreimage = errors.New("corrupt preimage entry")
)

// Store keeps payment preimages keyed by their payment hash.
type Store struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Open opens or creates the database at dbPath.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), 0700)
	if err != nil {
		return nil, errors.Join(ErrOpenStore, err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Join(ErrOpenStore, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreimages)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpenStore, err)
	}

	return &Store{
		db:     db,
		logger: logger.With(slog.String("module", "invoice")),
	}, nil
}

// NewPreimage generates a random preimage and stores it under its sha256 hash.
func (s *Store) NewPreimage() (engine.PaymentHash, engine.PaymentPreimage, error) {
	var preimage engine.PaymentPreimage
	_, err := rand.Read(preimage[:])
	if err != nil {
		return engine.PaymentHash{}, engine.PaymentPreimage{}, errors.Join(ErrRandom, err)
	}

	var hash engine.PaymentHash
	copy(hash[:], bsvhash.Sha256(preimage[:]))

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreimages).Put(hash[:], preimage[:])
	})
	if err != nil {
		return engine.PaymentHash{}, engine.PaymentPreimage{}, errors.Join(ErrStoreOperation, err)
	}

	s.logger.Info("Created invoice preimage", slog.String("hash", hash.String()))

	return hash, preimage, nil
}

func (s *Store) Lookup(hash engine.PaymentHash) (engine.PaymentPreimage, bool, error) {
	var preimage engine.PaymentPreimage
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketPreimages).Get(hash[:])
		if value == nil {
			return nil
		}
		if len(value) != len(preimage) {
			return fmt.Errorf("%w: %s has %d bytes", ErrCorruptPreimage, hash, len(value))
		}

		copy(preimage[:], value)
		found = true
		return nil
	})
	if err != nil {
		return engine.PaymentPreimage{}, false, err
	}

	return preimage, found, nil
}

func (s *Store) Delete(hash engine.PaymentHash) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreimages).Delete(hash[:])
	})
	if err != nil {
		return errors.Join(ErrStoreOperation, err)
	}

	return nil
}

// Hashes returns the payment hashes of all stored preimages.
func (s *Store) Hashes() ([]engine.PaymentHash, error) {
	var hashes []engine.PaymentHash

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPreimages).ForEach(func(k, _ []byte) error {
			var hash engine.PaymentHash
			if len(k) != len(hash) {
				s.logger.Warn("Skipping malformed preimage key", slog.Int("len", len(k)))
				return nil
			}
			copy(hash[:], k)
			hashes = append(hashes, hash)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Join(ErrStoreOperation, err)
	}

	return hashes, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
