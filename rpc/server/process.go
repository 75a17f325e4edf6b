// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/tidechain/tidechaind/fault"
	"github.com/tidechain/tidechaind/rpc/jobqueue"
	"github.com/tidechain/tidechaind/rpc/listeners"
	"github.com/tidechain/tidechaind/rpc/resource"
)

// processRequest - the JSON-RPC pipeline for one request body
//
// returns the HTTP status and the reply payload; the caller owns
// delivery and the keep-alive decision. RPC level errors travel
// inside a 200 payload, never as an HTTP status.
func (h *Handler) processRequest(
	port *listeners.Port,
	body []byte,
	remote string,
	job jobqueue.Handle,
	forwardedFor string,
	user string,
	start time.Time,
) (int, []byte) {

	host := remoteHost(remote)

	// envelope validation
	var envelope map[string]interface{}
	if len(body) > maximumRequestSize ||
		nil != json.Unmarshal(body, &envelope) ||
		nil == envelope {
		return http.StatusBadRequest, errorBody(http.StatusBadRequest, "unable to parse request")
	}

	// method must be present, a string and non-empty
	method, found := envelope["method"]
	if !found || nil == method {
		return http.StatusBadRequest, errorBody(http.StatusBadRequest, "null method")
	}
	methodName, ok := method.(string)
	if !ok {
		return http.StatusBadRequest, errorBody(http.StatusBadRequest, "method is not string")
	}
	if "" == methodName {
		return http.StatusBadRequest, errorBody(http.StatusBadRequest, "method is empty")
	}

	// the request id picks the role requirement policy; the first
	// object of the params array, when shaped that way, is the
	// role resolution hint
	id, _ := envelope["id"].(string)
	hint := firstParamsObject(envelope)

	role := RequestRole(roleRequired(id), port, hint, net.ParseIP(host), user)

	// identity headers are only honoured for a trusted proxy
	if RoleIdentified != role {
		forwardedFor = ""
		user = ""
	}

	var consumer resource.Consumer
	if role.IsUnlimited() {
		consumer = h.resources.NewUnlimited(host)
	} else {
		consumer = h.resources.NewInbound(host)
	}

	if consumer.ShouldDisconnect() {
		return http.StatusServiceUnavailable, errorBody(http.StatusServiceUnavailable, "server is overloaded")
	}

	// params normalisation: absent becomes an empty object,
	// anything but a one element array of one object is rejected
	params, paramsErr := normaliseParams(envelope)
	if nil != paramsErr {
		return http.StatusBadRequest, errorBody(http.StatusBadRequest, "params unparseable")
	}

	if RoleForbidden == role {
		// slow down credential brute forcing
		time.Sleep(h.forbidden.Delay(host))
		return http.StatusForbidden, errorBody(http.StatusForbidden, "forbidden")
	}

	// provide the JSON-RPC method as the field "command"
	params["command"] = methodName
	h.log.Debugf("query: %s %v", methodName, params)

	ctx := &Context{
		Job:          job,
		Method:       methodName,
		Params:       params,
		Role:         role,
		Charge:       resource.FeeReferenceRPC,
		Remote:       remote,
		User:         user,
		ForwardedFor: forwardedFor,
	}

	result := h.executor.Execute(ctx)
	if nil == result {
		result = make(map[string]interface{})
	}

	// always report "status"; on an error echo the request
	if _, isError := result["error"]; isError {
		result["status"] = "error"
		result["request"] = params
		h.log.Debugf("rpc error: %v", result["error"])
	} else {
		result["status"] = "success"
	}

	reply := map[string]interface{}{
		"result": result,
	}
	payload, err := json.Marshal(reply)
	if nil != err {
		h.log.Errorf("marshal reply error: %s", err)
		return http.StatusInternalServerError, errorBody(http.StatusInternalServerError, "internal server error")
	}
	payload = append(payload, '\n')

	h.metrics.observe(time.Since(start), len(payload))

	// exactly one charge per processed request
	consumer.Charge(ctx.Charge)

	return http.StatusOK, payload
}

// ProcessMessage - run one message through the pipeline for a
// transport that has no HTTP status channel (WebSocket)
func (h *Handler) ProcessMessage(port *listeners.Port, remote string, body []byte) []byte {
	_, payload := h.processRequest(port, body, remote, nil, "", "", time.Now())
	return payload
}

// the first object inside a params array, if present; otherwise
// an empty object
func firstParamsObject(envelope map[string]interface{}) map[string]interface{} {
	if array, ok := envelope["params"].([]interface{}); ok && len(array) > 0 {
		if object, ok := array[0].(map[string]interface{}); ok {
			return object
		}
	}
	return make(map[string]interface{})
}

// explicit present-and-of-expected-shape check of "params"
func normaliseParams(envelope map[string]interface{}) (map[string]interface{}, error) {
	raw, found := envelope["params"]
	if !found || nil == raw {
		return make(map[string]interface{}), nil
	}

	array, ok := raw.([]interface{})
	if !ok || 1 != len(array) {
		return nil, fault.ParamsUnparseable
	}
	object, ok := array[0].(map[string]interface{})
	if !ok {
		return nil, fault.ParamsUnparseable
	}
	return object, nil
}

// json encoded error reply body
func errorBody(code int, message string) []byte {
	payload, err := json.Marshal(struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}{
		Code:  code,
		Error: message,
	})
	if nil != err {
		return []byte(`{"code":500,"error":"internal server error"}`)
	}
	return payload
}

func remoteHost(remote string) string {
	host, _, err := net.SplitHostPort(remote)
	if nil != err {
		return remote
	}
	return host
}
