// Package nonogramserver exposes the embedded database migrations to the
// binaries under cmd.
package nonogramserver

import "embed"

//go:embed migrations
var Migrations embed.FS
