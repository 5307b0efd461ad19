package dispatcher

//go:generate moq -pkg mocks -out ./mocks/funding_client_mock.go . FundingClient

//go:generate moq -pkg mocks -out ./mocks/broadcaster_mock.go . Broadcaster

//go:generate moq -pkg mocks -out ./mocks/preimage_store_mock.go . PreimageStore

//go:generate moq -pkg mocks -out ./mocks/snapshot_writer_mock.go . SnapshotWriter
