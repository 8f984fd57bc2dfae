// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a long-running entry point (HTTP API, worker) started by main.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
