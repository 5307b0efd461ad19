package p2p

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

const compressedPubKeyLen = 33

var ErrInvalidNodeAddress = errors.New("invalid node address, expected <pubkey>@<host>:<port>")

// NodeAddress identifies a remote node and where to reach it.
type NodeAddress struct {
	NodeID []byte
	Addr   string
}

func (n NodeAddress) String() string {
	return hex.EncodeToString(n.NodeID) + "@" + n.Addr
}

// ParseNodeID decodes a hex encoded compressed secp256k1 public key.
func ParseNodeID(pubKeyHex string) ([]byte, error) {
	nodeID, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, errors.Join(ErrInvalidNodeAddress, err)
	}

	if len(nodeID) != compressedPubKeyLen {
		return nil, fmt.Errorf("%w: public key has %d bytes", ErrInvalidNodeAddress, len(nodeID))
	}

	_, err = ec.PublicKeyFromBytes(nodeID)
	if err != nil {
		return nil, errors.Join(ErrInvalidNodeAddress, err)
	}

	return nodeID, nil
}

// ParseNodeAddress parses "<hex compressed pubkey>@<host>:<port>".
func ParseNodeAddress(s string) (NodeAddress, error) {
	pubKeyHex, addr, found := strings.Cut(strings.TrimSpace(s), "@")
	if !found || pubKeyHex == "" || addr == "" {
		return NodeAddress{}, ErrInvalidNodeAddress
	}

	nodeID, err := ParseNodeID(pubKeyHex)
	if err != nil {
		return NodeAddress{}, err
	}

	_, _, err = net.SplitHostPort(addr)
	if err != nil {
		return NodeAddress{}, errors.Join(ErrInvalidNodeAddress, err)
	}

	return NodeAddress{NodeID: nodeID, Addr: addr}, nil
}
