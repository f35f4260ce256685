package main

import (
	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
