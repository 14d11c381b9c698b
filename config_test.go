package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 7, cfg.TotalRouters())

	_, err := Build(cfg.Params, cfg.BuildOptions()...)
	require.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "lab.yaml", `
p: 2
pe: 5
p2p_pool: 10.1.0.0/24
seed: 77
format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.NumP = 2
	want.NumPE = 5
	want.P2PPool = "10.1.0.0/24"
	want.Seed = 77
	want.Format = FormatJSON
	require.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "p: [1, 2\n"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "negative P", modify: func(c *Config) { c.NumP = -1 }},
		{name: "negative PE", modify: func(c *Config) { c.NumPE = -3 }},
		{name: "no workers", modify: func(c *Config) { c.Workers = 0 }},
		{name: "unknown format", modify: func(c *Config) { c.Format = "xml" }},
		{name: "bad asn", modify: func(c *Config) { c.Settings.ASN = 0 }},
		{name: "no interface prefix", modify: func(c *Config) { c.Settings.InterfacePrefix = "" }},
		{name: "bad ospf process", modify: func(c *Config) { c.Settings.OSPFProcess = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
