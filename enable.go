// SPDX-License-Identifier: MIT

package dbg

import (
	"context"
	"net/url"
	"os"
	"strings"
)

// Enabled reports whether debug output should be produced for ctx. The
// checks short-circuit in a fixed order:
//
//  1. master switch off → false
//  2. environment detection opted out → true, unconditionally
//  3. the configured environment variable names a development environment → true
//  4. no request bound to ctx (CLI execution) → true
//  5. the request referrer host is on the allow list → true
//  6. otherwise → false
func Enabled(ctx context.Context) bool {
	if !store.getBool(OptEnabled) {
		return false
	}
	if !store.getBool(OptDetectEnvironment) {
		return true
	}
	if env := os.Getenv(store.getString(OptEnvironmentVar)); env != "" {
		for _, dev := range store.getStrings(OptDevEnvironments) {
			if strings.EqualFold(env, dev) {
				return true
			}
		}
	}
	b, ok := boundRequest(ctx)
	if !ok {
		return true
	}
	if host := refererHost(b.referer); host != "" {
		for _, allowed := range store.getStrings(OptAllowedReferrers) {
			if strings.EqualFold(host, allowed) {
				return true
			}
		}
	}
	return false
}

// refererHost extracts the bare hostname from a Referer header value.
func refererHost(referer string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
