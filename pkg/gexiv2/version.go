package gexiv2

// Version is the wrapper's semantic version, set at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go module.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the linked gexiv2 version, such as "0.14.3", or ""
// when the native bindings are not built.
func NativeVersion() string {
	return std.drv.Version()
}
