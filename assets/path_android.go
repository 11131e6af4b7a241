//go:build android

package assets

// Base returns the directory bundled assets are resolved against.
// On Android assets are exposed at the root of the asset filesystem,
// so paths are used as-is.
func Base() (string, error) {
	return "", nil
}
