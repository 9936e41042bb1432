package main

import "github.com/philipp01105/conlog/cmd/conlog/cmd"

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
