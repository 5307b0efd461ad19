package channel_store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	recordVersion = 1
	// maxPayloadSize bounds the length prefix of a stored blob.
	maxPayloadSize = 32 * 1024 * 1024
	checksumSize   = 4
)

var ErrCorruptRecord = errors.New("corrupt record")

// ChannelRecord is the durable state of one channel, keyed by its funding outpoint.
type ChannelRecord struct {
	LastBlockHash chainhash.Hash
	Monitor       []byte
}

func (r ChannelRecord) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Write(r.LastBlockHash[:])

	err := wire.WriteVarBytes(buf, 0, r.Monitor)
	if err != nil {
		return nil, err
	}

	return frame(buf.Bytes()), nil
}

func DecodeRecord(data []byte) (ChannelRecord, error) {
	var record ChannelRecord

	payload, err := unframe(data)
	if err != nil {
		return record, err
	}

	r := bytes.NewReader(payload)
	_, err = io.ReadFull(r, record.LastBlockHash[:])
	if err != nil {
		return record, errors.Join(ErrCorruptRecord, err)
	}

	record.Monitor, err = wire.ReadVarBytes(r, 0, maxPayloadSize, "monitor")
	if err != nil {
		return record, errors.Join(ErrCorruptRecord, err)
	}

	if r.Len() != 0 {
		return record, fmt.Errorf("%w: %d trailing bytes", ErrCorruptRecord, r.Len())
	}

	return record, nil
}

// frame prefixes the payload with the format version and appends a CRC32 of both.
func frame(payload []byte) []byte {
	out := make([]byte, 0, 1+len(payload)+checksumSize)
	out = append(out, recordVersion)
	out = append(out, payload...)

	return binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(out))
}

func unframe(data []byte) ([]byte, error) {
	if len(data) < 1+checksumSize {
		return nil, fmt.Errorf("%w: too short", ErrCorruptRecord)
	}

	body := data[:len(data)-checksumSize]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(data[len(data)-checksumSize:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptRecord)
	}

	if body[0] != recordVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrCorruptRecord, body[0])
	}

	return body[1:], nil
}
