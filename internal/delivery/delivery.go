// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport server collected into the
// "deliveries" fx group and started by the entrypoints.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
