// Package config provides configuration management for the dtopr CLI.
//
// The configuration file is searched in the current directory and then in
// $XDG_CONFIG_HOME/dtopr/config.yaml. Every key can be overridden with a
// DTOPR_ prefixed environment variable (DTOPR_INSTALL_DIR, DTOPR_PICKER, ...).
//
//	version: 1
//	install_dir: /usr/share/applications/
//	clear_screen: true
//	picker: numbered   # or fuzzy
//
// Call [Init] once at startup, then [Load]. [Current] reflects flag
// overrides bound into Viper by the command layer.
package config
