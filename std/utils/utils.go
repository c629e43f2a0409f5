package utils

// Version from source control, set at build time with -ldflags.
var Version string = "unknown"
