//go:build linux

package main

import (
	"github.com/google/gops/agent"
	log "github.com/sirupsen/logrus"
)

func gopsListen() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Warningf("could not start gops agent: %v", err)
	}
}
