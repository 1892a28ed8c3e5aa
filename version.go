package brush

// Version is the release of the brush module, overridden at build time with -ldflags.
var Version = "v0.1.0"
