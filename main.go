package main

import "doc-localizer/internal/cli"

func main() {
	cli.Execute()
}
