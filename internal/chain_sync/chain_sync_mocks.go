package chain_sync

//go:generate moq -pkg mocks -out ./mocks/chain_client_mock.go . ChainClient

//go:generate moq -pkg mocks -out ./mocks/fee_updater_mock.go . FeeUpdater

//go:generate moq -pkg mocks -out ./mocks/rebroadcaster_mock.go . Rebroadcaster

//go:generate moq -pkg mocks -out ./mocks/notifier_mock.go . Notifier
