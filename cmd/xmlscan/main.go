package main

import "github.com/dbsmedya/xmlscan/cmd/xmlscan/cmd"

func main() {
	cmd.Execute()
}
