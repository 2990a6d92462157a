package main

import "subrewriter/cmd/subrewrite/cmd"

func main() {
	cmd.Execute()
}
