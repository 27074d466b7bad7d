package main

import "github.com/init-pkg/column-mapper/cmd/mapper/cmd"

func main() {
	cmd.Execute()
}
