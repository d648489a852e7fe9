package main

import (
	"log"

	"fablock/agent"
	"fablock/config"
)

func main() {
	cfg := config.MustLoad()
	app := &agent.App{}
	// Hardware-facing collaborators get wired here once their drivers land;
	// the agent skips nil entries.
	app.Initialize(cfg, agent.Collaborators{})
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
