package config

import (
	"os"
)

const (
	dbPathEnvKey        = "TASKBOARD_DB_PATH"
	exportPathEnvKey    = "TASKBOARD_EXPORT_PATH"
	sessionSecretEnvKey = "TASKBOARD_SESSION_SECRET"
)

const (
	defaultDBPath     = "taskboard.db"
	defaultExportPath = "projects.csv"
	// local single-user tool, the secret only has to outlive the process
	defaultSessionSecret = "taskboard-local-session"
)

type App struct {
	DBPath        string
	ExportPath    string
	SessionSecret string
}

func NewApp() App {
	return App{
		DBPath:        lookupOrDefault(dbPathEnvKey, defaultDBPath),
		ExportPath:    lookupOrDefault(exportPathEnvKey, defaultExportPath),
		SessionSecret: lookupOrDefault(sessionSecretEnvKey, defaultSessionSecret),
	}
}

func lookupOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
