package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/signum-network/signum-did-resolver-go/pkg/ledger"
)

var defaults = map[string]interface{}{
	"network":     ledger.NetworkMainnet,
	"node_url":    "",
	"listen_addr": ":3000",
	"verbose":     false,
}

func init() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

type Config struct {
	// Network selects the default public node and the DID network the
	// resolver serves.
	Network string
	// NodeURL overrides the default public node endpoint.
	NodeURL    string
	ListenAddr string
	Verbose    bool
}

// Load reads configuration from SIGNUM_DID_* environment variables.
func Load() (*Config, error) {
	viper.SetEnvPrefix("SIGNUM_DID")
	viper.AutomaticEnv()

	network, err := ledger.NormalizeNetwork(viper.GetString("network"))
	if err != nil {
		return nil, errors.Wrap(err, "network config")
	}

	c := &Config{
		Network:    network,
		NodeURL:    viper.GetString("node_url"),
		ListenAddr: viper.GetString("listen_addr"),
		Verbose:    viper.GetBool("verbose"),
	}

	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}
