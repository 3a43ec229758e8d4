package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/pkg/config"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)
	return cmd, out
}

func TestRunContent_WritesDefaults(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")
	cfg = &config.Config{KV: config.KVConfig{URL: "redis://" + mr.Addr(), Token: "secret"}}

	cmd, out := newTestCommand()
	require.NoError(t, runContent(cmd, nil))

	for _, key := range []string{services.TeamMembersKey, services.PageContentKey, services.ChatbotSettingsKey} {
		assert.True(t, mr.Exists(key), key)
	}
	assert.Contains(t, out.String(), "Team roster:")
}

func TestRunContent_UnreachableStoreFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg = &config.Config{KV: config.KVConfig{URL: "redis://" + addr, Token: "secret"}}

	cmd, out := newTestCommand()
	err := runContent(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KV store unreachable")
	assert.Empty(t, out.String())
}

func TestRunContent_NotConfigured(t *testing.T) {
	cfg = &config.Config{}

	cmd, _ := newTestCommand()
	assert.ErrorContains(t, runContent(cmd, nil), "KV store not configured")
}
