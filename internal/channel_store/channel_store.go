package channel_store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitcoin-sv/lnbridge/internal/engine"
)

const (
	managerDataFile = "manager_data"
	tmpSuffix       = ".tmp"
	bkSuffix        = ".bk"
)

var (
	ErrPermanentFailure = errors.New("permanent storage failure")
	ErrNotFound         = errors.New("not found")
	ErrReadDir          = errors.New("failed to read storage directory")
)

type Entry struct {
	OutPoint engine.OutPoint
	Record   ChannelRecord
}

// Store keeps one file per channel in a directory. An update either leaves the
// previous record or the new record readable, never neither.
type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	removeFile func(name string) error
}

func New(dir string, logger *slog.Logger) (*Store, error) {
	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	return &Store{
		dir:    dir,
		logger: logger.With(slog.String("module", "channel-store")),
		locks:  make(map[string]*sync.Mutex),

		removeFile: os.Remove,
	}, nil
}

func (s *Store) lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Store) AddOrUpdate(outpoint engine.OutPoint, record ChannelRecord) error {
	data, err := record.Encode()
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}

	name := outpoint.FileName()
	defer s.lock(name)()

	err = s.replaceFile(name, data)
	if err != nil {
		s.logger.Error("Failed to persist channel record", slog.String("outpoint", outpoint.String()), slog.String("err", err.Error()))
		return err
	}

	return nil
}

// PersistMonitor stores the state of a channel monitor.
func (s *Store) PersistMonitor(state engine.MonitorState) error {
	return s.AddOrUpdate(state.FundingTxo, ChannelRecord{LastBlockHash: state.LastBlockHash, Monitor: state.Data})
}

func (s *Store) WriteManagerData(data []byte) error {
	defer s.lock(managerDataFile)()

	err := s.replaceFile(managerDataFile, frame(data))
	if err != nil {
		s.logger.Error("Failed to persist manager data", slog.String("err", err.Error()))
		return err
	}

	return nil
}

// ReadManagerData returns the last written manager snapshot. If the snapshot is
// missing or damaged the backup of an interrupted update is used.
func (s *Store) ReadManagerData() ([]byte, error) {
	defer s.lock(managerDataFile)()

	found := false
	for _, name := range []string{managerDataFile, managerDataFile + bkSuffix} {
		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn("Failed to read manager data", slog.String("file", name), slog.String("err", err.Error()))
			}
			continue
		}
		found = true

		data, err := unframe(raw)
		if err != nil {
			s.logger.Warn("Skipping damaged manager data", slog.String("file", name), slog.String("err", err.Error()))
			continue
		}

		return data, nil
	}

	if found {
		return nil, fmt.Errorf("%w: no readable manager data", ErrCorruptRecord)
	}

	return nil, ErrNotFound
}

// replaceFile writes data to dir/name through a temporary file, keeping a
// backup of the previous content until the new content is durable.
func (s *Store) replaceFile(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmpPath := path + tmpSuffix
	bkPath := path + bkSuffix

	err := writeSynced(tmpPath, data)
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}

	needBackup := true
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		needBackup = false
	case err == nil && !info.Mode().IsRegular():
		return errors.Join(ErrPermanentFailure, fmt.Errorf("%s is not a regular file", path))
	}

	if needBackup {
		err = copySynced(path, bkPath)
		if err != nil {
			return errors.Join(ErrPermanentFailure, err)
		}
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}

	err = syncPath(path)
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}

	err = syncPath(s.dir)
	if err != nil {
		return errors.Join(ErrPermanentFailure, err)
	}

	// the new content is durable, a backup left behind is removed by the next update
	err = s.removeFile(bkPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Failed to remove backup file", slog.String("path", bkPath), slog.String("err", err.Error()))
	}

	return nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Sync()
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func copySynced(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return err
	}

	err = out.Sync()
	if err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func syncPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	err = f.Sync()
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

type candidates struct {
	outpoint engine.OutPoint
	files    map[string]string
}

// LoadAll reads every channel record in the directory. For each outpoint the main
// file is preferred over a backup and the backup over a temporary file.
func (s *Store) LoadAll() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Join(ErrReadDir, err)
	}

	byOutPoint := make(map[string]*candidates)
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if name == managerDataFile || strings.HasPrefix(name, managerDataFile+".") {
			continue
		}

		outpoint, suffix, ok := parseFileName(name)
		if !ok {
			s.logger.Warn("Skipping unknown file in storage directory", slog.String("file", name))
			continue
		}

		key := outpoint.FileName()
		c, found := byOutPoint[key]
		if !found {
			c = &candidates{outpoint: outpoint, files: make(map[string]string)}
			byOutPoint[key] = c
		}
		c.files[suffix] = name
	}

	keys := make([]string, 0, len(byOutPoint))
	for key := range byOutPoint {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		c := byOutPoint[key]

		record, ok := s.loadFirstReadable(c)
		if !ok {
			s.logger.Warn("Failed to read any storage file of channel", slog.String("outpoint", c.outpoint.String()))
			continue
		}

		entries = append(entries, Entry{OutPoint: c.outpoint, Record: record})
	}

	return entries, nil
}

func (s *Store) loadFirstReadable(c *candidates) (ChannelRecord, bool) {
	for _, suffix := range []string{"", bkSuffix, tmpSuffix} {
		name, ok := c.files[suffix]
		if !ok {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warn("Failed to read channel file", slog.String("file", name), slog.String("err", err.Error()))
			continue
		}

		record, err := DecodeRecord(raw)
		if err != nil {
			s.logger.Warn("Skipping undecodable channel file", slog.String("file", name), slog.String("err", err.Error()))
			continue
		}

		if suffix != "" {
			s.logger.Warn("Recovered channel record from leftover file", slog.String("file", name))
		}

		return record, true
	}

	return ChannelRecord{}, false
}

// parseFileName splits names of the form {64 hex txid}_{index}[.suffix].
func parseFileName(name string) (engine.OutPoint, string, bool) {
	if len(name) < 66 || name[64] != '_' {
		return engine.OutPoint{}, "", false
	}

	txid, err := chainhash.NewHashFromStr(name[:64])
	if err != nil {
		return engine.OutPoint{}, "", false
	}

	indexStr, suffix := name[65:], ""
	if dot := strings.IndexByte(indexStr, '.'); dot >= 0 {
		indexStr, suffix = indexStr[:dot], indexStr[dot:]
	}

	if suffix != "" && suffix != tmpSuffix && suffix != bkSuffix {
		return engine.OutPoint{}, "", false
	}

	index, err := strconv.ParseUint(indexStr, 10, 32)
	if err != nil {
		return engine.OutPoint{}, "", false
	}

	return engine.OutPoint{Txid: *txid, Index: uint32(index)}, suffix, true
}
