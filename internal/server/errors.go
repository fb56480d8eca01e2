// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when neither the HTTP nor
// the gRPC handler was built.
var errNoServersAreCreated = errors.New("no servers are created")
