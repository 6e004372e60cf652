package site

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var embedded embed.FS

// assets is the static directory with its prefix stripped.
var assets = func() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic("site: static assets missing: " + err.Error())
	}
	return sub
}()

// Assets returns the embedded stylesheet and any other static files.
func Assets() fs.FS {
	return assets
}
