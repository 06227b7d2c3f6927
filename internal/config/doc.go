// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/pngstash/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/pngstash/config.toml on macOS, %APPDATA%\pngstash\config.toml
// on Windows). The package provides type-safe configuration access for encode behavior
// (in-place rewrites, backups) and UI settings.
package config
