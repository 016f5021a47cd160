// Package dom applies render descriptors to the browser document and binds
// page controllers to DOM events. It is the only client code that touches
// syscall/js and only builds for GOOS=js GOARCH=wasm.
package dom
