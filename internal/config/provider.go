package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	domainconfig "github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

const (
	// DataDirName is the per-checkout data directory.
	DataDirName = ".udeploy"
	// LocalConfigFile holds persisted defaults inside the data directory.
	LocalConfigFile = "config.yaml"
)

// SetupViper creates a viper instance bound to the UDEPLOY_* environment.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("UDEPLOY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.Set("project_root", projectRoot)
	v.SetDefault("timeout", "5m")
	return v
}

// BindGlobalFlags binds the root command's persistent flags into viper.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Root().PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			key := strings.ReplaceAll(flag.Name, "-", "_")
			_ = v.BindPFlag(key, flag)
		}
	})
}

// Provider resolves the complete RuntimeConfig from viper, foundry.toml and
// the local config file. Used by wire to build the app.
func Provider(v *viper.Viper) (*domainconfig.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &domainconfig.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	foundryConfig, err := LoadFoundryConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.FoundryConfig = foundryConfig

	cfg.LocalConfig = loadLocalConfig(cfg.DataDir)

	// --network wins over the persisted default
	networkName := v.GetString("network")
	if networkName == "" {
		networkName = cfg.LocalConfig.Network
	}
	if networkName != "" {
		resolver := NewNetworkResolver(foundryConfig)
		network, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, err
		}
		cfg.Network = network
	}

	return cfg, nil
}

// loadLocalConfig reads the persisted defaults, tolerating a missing or
// unreadable file.
func loadLocalConfig(dataDir string) *domainconfig.LocalConfig {
	cfg := &domainconfig.LocalConfig{}
	data, err := os.ReadFile(filepath.Join(dataDir, LocalConfigFile))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed local config: %v\n", err)
		return &domainconfig.LocalConfig{}
	}
	return cfg
}

// FindProjectRoot walks up from the current directory to find foundry.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}
