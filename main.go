package main

import (
	"log"

	"github.com/Carehealth1/jcindex/config"
	"github.com/Carehealth1/jcindex/route"
)

func main() {
	config.SetupAll()

	e := route.NewHandler()

	if err := e.Start(config.ServerConfig().Port); err != nil {
		log.Fatal(err)
	}
}
