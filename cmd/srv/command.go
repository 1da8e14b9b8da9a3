package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "socialai"
	app.Usage = "Backend for the SocialAI demo"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.toml",
			Usage: "Path to the configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Serves the backend API plus the toast websocket feed.`,
		},
	}

	s.app = app
}
