//go:build gpu

package main

// Building with -tags gpu enables gg's wgpu accelerator. gg falls back to
// the software renderer when no adapter is available.
import _ "github.com/gogpu/gg/gpu"
