// Package version contains the osmcities version.
package version

// Version is the software version.
const Version = "0.1.0"
