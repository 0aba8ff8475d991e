package main

import "github.com/mzkit-go/mzkit/cmd/mzkit/cmd"

func main() {
	cmd.Execute()
}
