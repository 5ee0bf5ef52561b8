package parameter

import "time"

// State Feed
const (
	// FeedDefaultAddr is the listen address used when the feed is enabled without one
	FeedDefaultAddr = "127.0.0.1:8521"

	// FeedClientQueue is the per-client frame backlog before frames are dropped
	FeedClientQueue = 16

	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second

	// FeedPingInterval is the keepalive period for idle connections
	FeedPingInterval = 30 * time.Second

	// FeedShutdownTimeout bounds the HTTP server drain on exit
	FeedShutdownTimeout = 3 * time.Second
)
