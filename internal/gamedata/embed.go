// Package gamedata provides the embedded stage set and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the stage index and every stage grid at build time.
//
//go:embed stages.json stage*.txt
var dataFS embed.FS
