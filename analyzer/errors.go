package analyzer

import "errors"

// Failure classes for one query. Every failure inside the pipeline
// wraps exactly one of these sentinels, so callers and tests can
// classify with errors.Is while the wrapped detail stays readable.
var (
	// ErrAuth means no API key is configured. Checked before any
	// device or network round trip.
	ErrAuth = errors.New("APIKEY environment variable not set")

	// ErrInput means the question was empty.
	ErrInput = errors.New("question cannot be empty")

	// ErrCapture covers the whole screenshot path: screencap, pull,
	// and decoding the pulled image.
	ErrCapture = errors.New("screen capture failed")

	// ErrTransport means the model endpoint could not be reached or
	// the call itself failed.
	ErrTransport = errors.New("model request failed")

	// ErrProtocol means the endpoint answered but without the
	// expected completion content.
	ErrProtocol = errors.New("malformed model response")

	// ErrTimeout means the query deadline expired. The in-flight
	// work is abandoned, not interrupted.
	ErrTimeout = errors.New("request timeout")
)
