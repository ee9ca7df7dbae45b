package main

import "github.com/mlkit-go/datasets/cmd"

func main() {
	cmd.Execute()
}
