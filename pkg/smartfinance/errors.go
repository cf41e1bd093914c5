package smartfinance

import "errors"

var (
	// ErrNoData is returned when the data boundary produced an empty snapshot.
	ErrNoData = errors.New("no data available")

	// ErrProviderUnavailable is returned when the aggregation provider cannot
	// be reached.
	ErrProviderUnavailable = errors.New("aggregation provider unavailable")

	// ErrOracleTimeout is returned when the external scoring oracle exceeds
	// its deadline.
	ErrOracleTimeout = errors.New("scoring oracle timed out")

	// ErrOracleFailed is returned when the external scoring oracle exits
	// abnormally.
	ErrOracleFailed = errors.New("scoring oracle failed")

	// ErrOracleOutput is returned when the oracle's response is malformed or
	// exceeds the size limit.
	ErrOracleOutput = errors.New("invalid scoring oracle output")
)
