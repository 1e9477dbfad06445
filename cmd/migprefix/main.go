package main

import "github.com/deicod/migprefix/internal/cli"

func main() {
	cli.Execute()
}
