// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker consumer) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks, accepting work until the context is cancelled or the
	// listener fails.
	Serve(ctx context.Context) error
}
