package main

import "github.com/podshelf/catalog-api/cmd"

func main() {
	cmd.Execute()
}
