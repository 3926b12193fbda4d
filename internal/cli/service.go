package cli

import (
	"github.com/spf13/viper"

	"mod-updater/internal/app"
)

func newAppService() (app.Service, error) {
	return app.NewService(app.ServiceOptions{
		HTTPTimeout:   viper.GetDuration("http_timeout"),
		HTTPAttempts:  viper.GetInt("http_attempts"),
		FabricMetaURL: viper.GetString("fabric_meta_url"),
	})
}
