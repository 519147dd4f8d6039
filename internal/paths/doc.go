// Package paths resolves the filesystem locations matter reads from.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// compliance. matter keeps its own configuration under [ConfigDir]:
//
//	paths.ConfigDir() // ~/.config/matter on Linux
//
// [ExpandHome] turns user-supplied paths such as "~/notes/post.md" into
// absolute ones before they are opened.
package paths
