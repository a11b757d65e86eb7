package palette

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed defaults/*
var embeddedPalette embed.FS

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
)

// EmbeddedFS returns the bundled palette files.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPalette, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

// Default returns the embedded palette. It panics if the bundled files are
// invalid, which the package tests rule out.
func Default() *Palette {
	defaultOnce.Do(func() {
		p, err := LoadFS(EmbeddedFS())
		if err != nil {
			panic(err)
		}
		defaultPalette = p
	})
	return defaultPalette
}
