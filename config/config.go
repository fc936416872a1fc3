// Package config resolves runtime settings from the environment, with
// command-line arguments layered on top by the CLI.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration of one replica process.
type Config struct {
	// ChatAddr is the client-facing gRPC listen address.
	ChatAddr string
	// ReplicaAddr is the peer-facing gRPC listen address.
	ReplicaAddr string
	// Advertise is the address peers use to reach this replica's
	// replica listener. Defaults to <advertise host>:<replica port>.
	Advertise string
	// DatabasePath is the SQLite file shared state lives in.
	DatabasePath string
	// Cluster is the contact address of an existing replica, empty for
	// a fresh cluster.
	Cluster string
	// MetricsAddr serves /metrics and /healthz; empty disables it.
	MetricsAddr string
	// AdvertiseHost builds the default Advertise value.
	AdvertiseHost string
	// SelfDestruct stops the process after this duration when nonzero.
	SelfDestruct time.Duration
	// LogLevel is debug, info, warn, or error.
	LogLevel string
}

// Load reads defaults and CHAT_-prefixed environment overrides. The
// CLI fills the address and path fields from its arguments afterwards.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("chat")
	v.AutomaticEnv()

	v.SetDefault("metrics_addr", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("advertise_host", "localhost")
	v.SetDefault("advertise", "")

	return &Config{
		MetricsAddr:   v.GetString("metrics_addr"),
		LogLevel:      v.GetString("log_level"),
		AdvertiseHost: v.GetString("advertise_host"),
		Advertise:     v.GetString("advertise"),
	}, nil
}
