package node

//go:generate moq -pkg mocks -out ./mocks/chain_rpc_mock.go . ChainRPC
