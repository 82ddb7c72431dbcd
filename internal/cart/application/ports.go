package application

import "context"

// Snapshots is the external key-value collaborator holding the
// serialized cart. Implementations must treat absence as (_, false, nil)
// rather than an error.
type Snapshots interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
