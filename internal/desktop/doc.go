// Package desktop models freedesktop.org desktop entries as dtopr produces
// them.
//
// A [Registry] is an ordered set of named [Field] values, each bound to a
// [Collector] that knows how to ask the user for it. The registry's order is
// the order fields are collected and reviewed in. [Write] serializes a
// registry as a desktop entry document:
//
//	[Desktop Entry]
//	Encoding=UTF-8
//	Version=1.0
//	Type=Application
//	Terminal=false
//	Name=My App
//	Comment=A test app
//	Exec=/usr/bin/myapp
//	Path=/home/user
//	Icon=/home/user/icon.png
//	Categories=Game;Graphics;
//
// Terminal is always written directly after the header; the remaining fields
// follow in registry order. [Parse] reads such a document back into ordered
// key/value pairs and [Validate] checks it.
package desktop
