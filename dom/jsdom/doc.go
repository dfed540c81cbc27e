// Package jsdom implements the dom interfaces over the browser DOM through
// syscall/js. It only builds for js/wasm.
package jsdom
