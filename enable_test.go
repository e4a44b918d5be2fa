// SPDX-License-Identifier: MIT

package dbg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicfox/dbg"
	"github.com/graphicfox/dbg/render"
)

// webCtx simulates a request context the middleware would produce.
func webCtx(referer string) context.Context {
	return dbg.BindRequest(context.Background(), dbg.RequestBinding{
		ID:      "test-req",
		Referer: referer,
		Mode:    render.ModeText,
	})
}

func TestEnabledMasterSwitchWins(t *testing.T) {
	t.Cleanup(dbg.Reset)

	require.NoError(t, dbg.Set(dbg.OptEnabled, false))
	require.NoError(t, dbg.Set(dbg.OptDetectEnvironment, false))

	assert.False(t, dbg.Enabled(context.Background()), "disable flag beats detection opt-out")
}

func TestEnabledDetectionOptOut(t *testing.T) {
	t.Cleanup(dbg.Reset)
	// Pin the environment variable so ambient APP_ENV cannot force-enable.
	require.NoError(t, dbg.Set(dbg.OptEnvironmentVar, "DBG_TEST_OPTOUT_ENV"))

	// A web request with no matching referrer would normally be denied.
	assert.False(t, dbg.Enabled(webCtx("http://prod.example.com/")))

	require.NoError(t, dbg.Set(dbg.OptDetectEnvironment, false))
	assert.True(t, dbg.Enabled(webCtx("http://prod.example.com/")))
}

func TestEnabledEnvironmentVariable(t *testing.T) {
	t.Cleanup(dbg.Reset)

	require.NoError(t, dbg.Set(dbg.OptEnvironmentVar, "DBG_TEST_APP_ENV"))

	t.Setenv("DBG_TEST_APP_ENV", "production")
	assert.False(t, dbg.Enabled(webCtx("")))

	t.Setenv("DBG_TEST_APP_ENV", "development")
	assert.True(t, dbg.Enabled(webCtx("")))

	// Matching is case-insensitive.
	t.Setenv("DBG_TEST_APP_ENV", "DEV")
	assert.True(t, dbg.Enabled(webCtx("")))
}

func TestEnabledCLIContext(t *testing.T) {
	t.Cleanup(dbg.Reset)

	// No request bound: CLI execution counts as development.
	assert.True(t, dbg.Enabled(context.Background()))
}

func TestEnabledReferrerAllowList(t *testing.T) {
	t.Cleanup(dbg.Reset)
	// Pin the environment variable so ambient APP_ENV cannot force-enable.
	require.NoError(t, dbg.Set(dbg.OptEnvironmentVar, "DBG_TEST_REFERRER_ENV"))

	require.NoError(t, dbg.Set(dbg.OptAllowedReferrers, []string{"dev.local"}))

	assert.True(t, dbg.Enabled(webCtx("http://dev.local/dashboard")))
	assert.True(t, dbg.Enabled(webCtx("https://DEV.LOCAL/x")), "host match is case-insensitive")
	assert.False(t, dbg.Enabled(webCtx("http://prod.example.com/")))
	assert.False(t, dbg.Enabled(webCtx("")))
}
