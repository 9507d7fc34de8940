package kv

import "context"

// Keys written by the storefront stores.
const (
	KeyCart        = "cart"
	KeyCurrentUser = "currentUser"
	KeyIsAdmin     = "isAdmin"
)

// Repository is a string-keyed blob store with get/set/remove semantics.
// A missing key is reported with ok=false, never as an error, and removing a
// missing key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
