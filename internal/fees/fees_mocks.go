package fees

//go:generate moq -pkg mocks -out ./mocks/smart_fee_estimator_mock.go . SmartFeeEstimator
