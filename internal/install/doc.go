// Package install moves a finished desktop entry into an applications
// directory.
//
// [Installer.Move] mirrors an interactive mv with numbered backups: it asks
// before replacing an existing entry and renames the old one to
// <name>.~N~. Moves between filesystems fall back to an atomic copy.
package install
