//go:build !(js && wasm)

package main

import (
	"github.com/pkg/profile"
)

var Debug = true

func ProfileCPU() func() {
	return profile.Start(profile.CPUProfile).Stop
}
