// Package data holds embedded assets (the annotated example config) at repo root data/ for clarity.
package data

import _ "embed"

//go:embed config.example.toml
var ExampleConfig []byte
