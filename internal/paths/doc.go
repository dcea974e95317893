// Package paths resolves the directories dtopr reads from and installs into.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance:
//
//	| Purpose            | Path                          |
//	|--------------------|-------------------------------|
//	| Configuration      | $XDG_CONFIG_HOME/dtopr/       |
//	| Per-user launchers | $XDG_DATA_HOME/applications/  |
//	| System launchers   | /usr/share/applications/      |
package paths
