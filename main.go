package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath   string
	flagCfg   = DefaultConfig()
	showTable bool
)

var rootCmd = &cobra.Command{
	Use:   "mpls-lab",
	Short: "Design an MPLS/BGP lab and render per-router configurations",
	Long: `mpls-lab connects P routers into a ring, dual-homes PE routers to it,
allocates loopback and point-to-point addresses and renders an MPLS/LDP,
OSPF and VPNv4 configuration for every router.

Configuration files are written to --config-dir, the inventory, topology
and configurations are exported to stdout.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "Path to a YAML lab file")
	f.IntVar(&flagCfg.NumP, "p", flagCfg.NumP, "Number of P (core) routers")
	f.IntVar(&flagCfg.NumPE, "pe", flagCfg.NumPE, "Number of PE (edge) routers")
	f.StringVar(&flagCfg.LoopbackPool, "loopback-pool", flagCfg.LoopbackPool, "IPv4 network for loopback addresses")
	f.StringVar(&flagCfg.P2PPool, "p2p-pool", flagCfg.P2PPool, "IPv4 network for point-to-point links")
	f.Uint64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "Hostname generator seed (0 = random)")
	f.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "Number of configurations rendered concurrently")
	f.StringVar(&flagCfg.ConfigDir, "config-dir", flagCfg.ConfigDir, "Directory to write configuration files to (empty disables)")
	f.StringVar(&flagCfg.Templates, "templates", flagCfg.Templates, "Path to a templates YAML file (default: built-in)")
	f.StringVarP(&flagCfg.Format, "format", "o", flagCfg.Format, "Bundle export format: yaml or json")
	f.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "Log level: debug, info, warn, error")
	f.BoolVar(&showTable, "table", false, "Print the interconnect table to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges the lab file, if any, with the flags set explicitly.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	if cfgPath == "" {
		return flagCfg, nil
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("p") {
		cfg.NumP = flagCfg.NumP
	}
	if f.Changed("pe") {
		cfg.NumPE = flagCfg.NumPE
	}
	if f.Changed("loopback-pool") {
		cfg.LoopbackPool = flagCfg.LoopbackPool
	}
	if f.Changed("p2p-pool") {
		cfg.P2PPool = flagCfg.P2PPool
	}
	if f.Changed("seed") {
		cfg.Seed = flagCfg.Seed
	}
	if f.Changed("workers") {
		cfg.Workers = flagCfg.Workers
	}
	if f.Changed("config-dir") {
		cfg.ConfigDir = flagCfg.ConfigDir
	}
	if f.Changed("templates") {
		cfg.Templates = flagCfg.Templates
	}
	if f.Changed("format") {
		cfg.Format = flagCfg.Format
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.Development = false
	config.Level = lvl
	return config.Build()
}

func run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	log := logger.Sugar()

	log.Debugw("building lab", "routers", cfg.TotalRouters(), "p", cfg.NumP, "pe", cfg.NumPE)

	templates, err := LoadTemplates(cfg.Templates)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	bundle, err := Build(cfg.Params, append(cfg.BuildOptions(), WithTemplates(templates), WithLog(log))...)
	if err != nil {
		return fmt.Errorf("failed to build lab: %w", err)
	}

	if cfg.ConfigDir != "" {
		paths, err := writeConfigs(cfg.ConfigDir, bundle)
		if err != nil {
			return fmt.Errorf("failed to write configurations: %w", err)
		}
		log.Infow("wrote configurations", "dir", cfg.ConfigDir, "files", len(paths))
	}

	if showTable {
		writeConnectionTable(os.Stderr, bundle.Connections)
	}

	if err := writeBundle(os.Stdout, bundle, cfg.Format); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	return nil
}
