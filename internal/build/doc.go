// Package build is the engine behind a resolved mason invocation: it
// fetches dependencies, compiles C sources with the host toolchain,
// and removes build state. The cli package only borrows the opaque
// Configuration type from here; everything else runs after parsing
// has finished.
package build
