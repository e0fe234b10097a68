package main

import (
	"github.com/npm-packages-collection/minify-css-map/cmd"
)

func main() {
	cmd.Execute()
}
