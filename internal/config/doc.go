// Package config provides configuration management for the matter CLI.
//
// # Configuration File
//
// Configuration is searched for as config.yaml in the current directory,
// then in $MATTER_CONFIG_DIR when set, then in ~/.config/matter. Every key
// can be overridden by an environment variable prefixed with MATTER_:
//
//	output: yaml          # MATTER_OUTPUT; json or yaml
//	indent: 4             # MATTER_INDENT
//	style: toml           # MATTER_STYLE; default target of "matter convert"
//	max_file_size: 65536  # MATTER_MAX_FILE_SIZE; bytes
//
// # Loading Configuration
//
// Call [Init] once, then [Load]. An empty path searches the default
// locations and falls back to [Default] values when nothing is found; an
// explicit path must exist:
//
//	config.Init()
//	cfg, err := config.Load(flagPath)
//
// All loaded configurations pass through [Validate].
package config
