package main

import (
	"github.com/mchmarny/spamdetector/pkg/cli"
)

func main() {
	cli.Execute()
}
