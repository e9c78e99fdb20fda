package config

import (
	"time"

	"github.com/spf13/viper"
)

type Api struct {
	// Address the sync state API listens on
	ListenAddress string

	// HMAC key used to verify indexer's JWT tokens
	SecretKey string

	// Timeouts of the underlying http.Server
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Allowed clock skew when checking token's exp/nbf/iat
	TokenAcceptableSkew time.Duration
}

func setApiDefaults() {
	viper.SetDefault("Api.ListenAddress", "0.0.0.0:3001")
	viper.SetDefault("Api.SecretKey", "")
	viper.SetDefault("Api.ServerReadTimeout", "10s")
	viper.SetDefault("Api.ServerWriteTimeout", "30s")
	viper.SetDefault("Api.TokenAcceptableSkew", "5s")
}
