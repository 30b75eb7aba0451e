package conf

import (
	"fmt"
	"strconv"
)

// ValidateSettings checks the loaded configuration for values the service
// cannot run with.
func ValidateSettings(settings *Settings) error {
	if settings.Output.SQLite.Enabled && settings.Output.MySQL.Enabled {
		return fmt.Errorf("only one of output.sqlite and output.mysql may be enabled")
	}
	if !settings.Output.SQLite.Enabled && !settings.Output.MySQL.Enabled {
		return fmt.Errorf("no storage backend enabled, enable output.sqlite or output.mysql")
	}

	if settings.Output.SQLite.Enabled && settings.Output.SQLite.Path == "" {
		return fmt.Errorf("output.sqlite.path must not be empty")
	}

	if settings.WebServer.Enabled {
		port, err := strconv.Atoi(settings.WebServer.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid webserver port: %q", settings.WebServer.Port)
		}
	}

	if settings.Workflow.SessionTTL <= 0 {
		return fmt.Errorf("workflow.sessionttl must be positive, got %d", settings.Workflow.SessionTTL)
	}

	return nil
}
