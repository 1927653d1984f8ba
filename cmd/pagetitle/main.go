package main

import "github.com/taigram/docs-theme/cmd/pagetitle/cmd"

func main() {
	cmd.Execute()
}
