package main

import "github.com/sundjerbob/ww3-sub001/internal/cmd"

func main() {
	cmd.Execute()
}
