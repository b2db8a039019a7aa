//go:build !debug

package simulator

// assertNormalized is a no-op in production builds; see assert_debug.go.
func assertNormalized(*State) {}
