package engine

//go:generate moq -pkg mocks -out ./mocks/block_listener_mock.go . BlockListener

//go:generate moq -pkg mocks -out ./mocks/events_provider_mock.go . EventsProvider

//go:generate moq -pkg mocks -out ./mocks/channel_manager_mock.go . ChannelManager

//go:generate moq -pkg mocks -out ./mocks/peer_handler_mock.go . PeerHandler

//go:generate moq -pkg mocks -out ./mocks/engine_mock.go . Engine
