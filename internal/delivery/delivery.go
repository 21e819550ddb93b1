// Package delivery defines the contract every transport entrypoint
// implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a server that blocks on Serve until stopped through its
// lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
