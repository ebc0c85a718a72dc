// Command shaderweb is the browser build of the gallery:
//
//	GOOS=js GOARCH=wasm go build -o shaderlab.wasm ./cmd/shaderweb
package main

import (
	"fmt"
	"os"

	"github.com/san-kum/shaderlab/internal/config"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/web"
)

func main() {
	if err := web.Run(config.DefaultConfig(), effect.Default()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
