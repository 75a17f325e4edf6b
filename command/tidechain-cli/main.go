// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// simple command line client for a local tidechaind
//
// speaks the same JSON-RPC-over-HTTP dialect as any other client:
// POST one envelope, read one enveloped reply
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "tidechain-cli"
	app.Usage = "query a running tidechaind node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " connect to node `HOST:PORT`",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect over https",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: " skip verification of the node certificate",
		},
		cli.StringFlag{
			Name:  "username, u",
			Value: "",
			Usage: " basic auth `USER`",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " basic auth `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "ping",
			Usage:  "check the node is answering",
			Action: runPing,
		},
		{
			Name:   "info",
			Usage:  "node version, mode and uptime",
			Action: runInfo,
		},
		{
			Name:      "raw",
			Usage:     "send an arbitrary method with optional JSON params",
			ArgsUsage: "METHOD [PARAMS-JSON]",
			Action:    runRaw,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runPing(c *cli.Context) error {
	return runCall(c, "ping", nil)
}

func runInfo(c *cli.Context) error {
	return runCall(c, "server_info", nil)
}

func runRaw(c *cli.Context) error {
	method := c.Args().First()
	if "" == method {
		return cli.NewExitError("raw: METHOD argument is required", 1)
	}
	var params map[string]interface{}
	if raw := c.Args().Get(1); "" != raw {
		if err := parseParams(raw, &params); nil != err {
			return cli.NewExitError(fmt.Sprintf("raw: params: %s", err), 1)
		}
	}
	return runCall(c, method, params)
}
