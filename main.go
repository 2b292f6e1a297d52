package main

import (
	"os"

	"github.com/PolarWolf314/passage/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
