// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "FraudFlow")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "fraudflow.log")

	viper.SetDefault("bank.name", "SecureBank")

	viper.SetDefault("webserver.enabled", true)
	viper.SetDefault("webserver.port", "8090")
	viper.SetDefault("webserver.log.enabled", true)
	viper.SetDefault("webserver.log.path", "api.log")

	viper.SetDefault("workflow.sessionttl", 30)
	viper.SetDefault("workflow.seeddemocases", true)
	viper.SetDefault("workflow.metricsenabled", true)

	viper.SetDefault("output.sqlite.enabled", true)
	viper.SetDefault("output.sqlite.path", "fraud_cases.db")

	viper.SetDefault("output.mysql.enabled", false)
	viper.SetDefault("output.mysql.username", "fraudflow")
	viper.SetDefault("output.mysql.password", "fraudflow")
	viper.SetDefault("output.mysql.database", "fraudflow")
	viper.SetDefault("output.mysql.host", "localhost")
	viper.SetDefault("output.mysql.port", "3306")
}
