// Package config holds the backend settings consumed by parsekit.
//
// Settings is an explicit value passed to the binding layer; nothing in
// parsekit reaches into ambient process state. The loader reads settings
// from a YAML file, a .env file, and PARSE_* environment variables, in
// that order of increasing precedence.
//
//	set, err := config.Load()
//	cfg, err := binding.BuildRequestConfig(set, "GameScore")
package config
