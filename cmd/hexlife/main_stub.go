//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of hexlife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/hexlife` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal version use ./cmd/hexlife-term.")
	os.Exit(2)
}
