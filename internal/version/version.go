// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Two-vector frames, frame nesting validation, body detail view
// 0.2.0 - Multi-phase timelines, frame trees, bounding sphere maintenance
// 0.1.0 - Initial release: universal coordinates, core frames, system TUI
