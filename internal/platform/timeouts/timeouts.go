// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// BrokerDial caps how long a consumer keeps retrying the initial broker dial.
const BrokerDial = 30 * time.Second

// HealthProbe caps a single health probe against a running service.
const HealthProbe = 3 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long a server waits for in-flight work during
// graceful shutdown.
const Shutdown = 5 * time.Second
