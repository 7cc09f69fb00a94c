package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLeavesOutSecrets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIUsers = []APIUser{{Name: "operator", Password: "s3cr3t-value"}}
	cfg.WalletPassword = "wallet-pass-value"
	cfg.ExternalIP = "203.0.113.7"

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "10234")
	assert.Contains(t, out, "seed1.ixian.io:10234")
	assert.Contains(t, out, "203.0.113.7")
	assert.Contains(t, out, "operator")
	assert.NotContains(t, out, "s3cr3t-value")
	assert.NotContains(t, out, "wallet-pass-value")
}
