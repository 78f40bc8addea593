// Package migrations embeds the versioned SQL schema applied by the
// migration runner.
package migrations

import "embed"

//go:embed V*__*.sql
var FS embed.FS
