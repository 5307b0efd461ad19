package p2p

//go:generate moq -pkg mocks -out ./mocks/notifier_mock.go . Notifier

//go:generate moq -pkg mocks -out ./mocks/dialer_mock.go . Dialer
