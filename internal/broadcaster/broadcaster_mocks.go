package broadcaster

//go:generate moq -pkg mocks -out ./mocks/tx_sender_mock.go . TxSender
