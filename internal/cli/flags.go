package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mod-updater/internal/app"
)

// bindProjectFlags registers the flags shared by every subcommand.
func bindProjectFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("dir", ".", "Project directory (the root or one of its sub-projects)")
	flags.String("config-name", app.DefaultConfigName, "Updater properties file name")
	flags.Duration("http-timeout", 60*time.Second, "Timeout for metadata requests")
	flags.Int("http-attempts", 1, "Attempts per metadata request")
	flags.String("fabric-meta-url", "", "Fabric meta base URL")

	_ = viper.BindPFlag("dir", flags.Lookup("dir"))
	_ = viper.BindPFlag("config_name", flags.Lookup("config-name"))
	_ = viper.BindPFlag("http_timeout", flags.Lookup("http-timeout"))
	_ = viper.BindPFlag("http_attempts", flags.Lookup("http-attempts"))
	_ = viper.BindPFlag("fabric_meta_url", flags.Lookup("fabric-meta-url"))
}

func projectRequest() app.ProjectRequest {
	return app.ProjectRequest{
		Dir:        viper.GetString("dir"),
		ConfigName: viper.GetString("config_name"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
