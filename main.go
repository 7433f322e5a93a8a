package main

import "github.com/ngld/knossos/packages/make-help/cmd"

func main() {
	cmd.Execute()
}
