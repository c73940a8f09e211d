// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")

	// errServerClosed is returned by RunServer of a transport after a
	// regular Shutdown.
	errServerClosed = errors.New("server closed")
)
