package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	schemaCmd.SetOut(&out)

	require.NoError(t, schemaCmd.RunE(schemaCmd, nil))

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	require.Contains(t, out.String(), "rpc_url")
	require.Contains(t, out.String(), "auto_whitelist")
}

func TestCheckCommand(t *testing.T) {
	var out bytes.Buffer
	checkCmd.SetOut(&out)

	configPath = "../../config.example.yaml"
	require.NoError(t, checkCmd.RunE(checkCmd, nil))
	require.Contains(t, out.String(), "is valid")

	configPath = "missing.yaml"
	require.Error(t, checkCmd.RunE(checkCmd, nil))
}
