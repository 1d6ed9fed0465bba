// Package session persists state-container snapshots across restarts, the
// way a browser keeps cart and auth state in local storage. Each container
// owns one independently keyed blob and rewrites it whole on every mutation.
package session

// Storage keys. Cart and auth snapshots never share a blob.
const (
	CartKey = "cart-storage"
	AuthKey = "auth-storage"
)

// Store saves and restores keyed JSON snapshots.
type Store interface {
	// Save serializes value and replaces the blob stored under key.
	Save(key string, value any) error
	// Load deserializes the blob under key into dest. It reports whether a
	// blob existed; a missing key is not an error.
	Load(key string, dest any) (bool, error)
}
