package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyPlacesMode, "textsearch")
	viper.SetDefault(KeyHTTPTimeout, 10)
	viper.SetDefault(KeyDDGMaxResults, 5)
	viper.SetDefault(KeyLogLevel, "info")
}

func GoogleAPIKey() string { return viper.GetString(KeyGoogleAPIKey) }
func GoogleCSEID() string  { return viper.GetString(KeyGoogleCSEID) }
func PlacesMode() string   { return viper.GetString(KeyPlacesMode) }
func HTTPTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyHTTPTimeout)) * time.Second
}
func DDGMaxResults() int { return viper.GetInt(KeyDDGMaxResults) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
