// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/urfave/cli"
)

const callTimeout = 30 * time.Second

// one JSON-RPC exchange with the node, reply printed as indented
// JSON on stdout
func runCall(c *cli.Context, method string, params map[string]interface{}) error {

	envelope := map[string]interface{}{
		"method": method,
		"id":     "1",
	}
	if nil != params {
		envelope["params"] = []interface{}{params}
	}

	body, err := json.Marshal(envelope)
	if nil != err {
		return cli.NewExitError(fmt.Sprintf("%s: marshal: %s", method, err), 1)
	}

	scheme := "http"
	client := &http.Client{Timeout: callTimeout}
	if c.GlobalBool("tls") {
		scheme = "https"
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: c.GlobalBool("insecure"),
			},
		}
	}

	url := fmt.Sprintf("%s://%s/", scheme, c.GlobalString("connect"))
	request, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if nil != err {
		return cli.NewExitError(fmt.Sprintf("%s: request: %s", method, err), 1)
	}
	request.Header.Set("Content-Type", "application/json")
	if user := c.GlobalString("username"); "" != user {
		request.SetBasicAuth(user, c.GlobalString("password"))
	}

	response, err := client.Do(request)
	if nil != err {
		return cli.NewExitError(fmt.Sprintf("%s: %s", method, err), 1)
	}
	defer response.Body.Close()

	payload, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return cli.NewExitError(fmt.Sprintf("%s: read: %s", method, err), 1)
	}

	if http.StatusOK != response.StatusCode {
		return cli.NewExitError(fmt.Sprintf("%s: %s: %s", method, response.Status, payload), 1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); nil != err {
		// print raw when the node sent something unexpected
		fmt.Fprintf(c.App.Writer, "%s\n", payload)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "%s\n", pretty.Bytes())
	return nil
}

func parseParams(raw string, params *map[string]interface{}) error {
	return json.Unmarshal([]byte(raw), params)
}
