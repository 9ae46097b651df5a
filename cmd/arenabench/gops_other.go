//go:build !linux

package main

import log "github.com/sirupsen/logrus"

func gopsListen() {
	log.Warning("gops agent is only wired up on linux")
}
