// Package version provides build and version information.
package version

// Version is the current library version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Rise/set solver, precession, galactic frame, almanac TUI
// 0.2.0 - Sidereal chain, Unix-epoch conversions, timezone handling
// 0.1.0 - Initial release: angle arithmetic, Julian Day conversions
