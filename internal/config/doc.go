// Package config loads luhn configuration from local and global YAML files
// with precedence rules. It is internal; CLI code maps flags and files into
// command behavior.
package config
