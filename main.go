package main

import (
	"os"

	log "github.com/schollz/logger"

	"github.com/richbar/richbar/src/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
