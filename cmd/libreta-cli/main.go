package main

import "github.com/adelgado/libreta/cmd/libreta-cli/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
