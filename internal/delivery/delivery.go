// Package delivery defines the contract shared by every serving surface of
// the application.
package delivery

import "context"

// Delivery is a long-running serving surface. The entrypoint starts each
// registered Delivery in its own goroutine; Serve blocks until the surface
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
