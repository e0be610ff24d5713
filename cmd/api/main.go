package main

import "github.com/amirhossein-jamali/gift-tracker/cmd/api/cmd"

func main() {
	cmd.Execute()
}
