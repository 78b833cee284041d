package main

import "github.com/frogmanjhb/checkinapp/cmd"

func main() {
	cmd.Execute()
}
