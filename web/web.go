// Package web holds the markup the client binds to. The compiled client
// (main.wasm) and the Go runtime shim (wasm_exec.js) are served from the
// static directory at runtime; see the Makefile.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
