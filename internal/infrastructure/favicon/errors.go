package favicon

import "errors"

var (
	// ErrSourceUnavailable is returned when a single source candidate yields no usable bytes
	// (transport error, timeout, non-2xx status, empty or oversized body).
	ErrSourceUnavailable = errors.New("favicon source unavailable")

	// ErrUndecodableImage is returned when fetched or stored bytes are not a usable raster image.
	ErrUndecodableImage = errors.New("undecodable favicon image")

	// ErrNilDependency is returned when a required dependency is nil.
	ErrNilDependency = errors.New("required dependency is nil")
)
