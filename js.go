//go:build js && wasm

package main

var Debug = false

func ProfileCPU() func() {
	return func() {}
}
