package logconfig

import (
	myLogger "github.com/sirupsen/logrus"
)

// Verbose output with caller info, used while developing and in tests.
func ConfigDebugLogger() {
	myLogger.SetReportCaller(true)
	myLogger.SetLevel(myLogger.DebugLevel)
	myLogger.SetFormatter(&myLogger.TextFormatter{
		ForceColors:            true,
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}

// This output format is used in production.
func ConfigProductionLogger() {
	myLogger.SetLevel(myLogger.InfoLevel)
}

// Select picks a logger preset from a configuration value ("debug" or
// anything else for production). Unknown values fall through to production.
func Select(level string) {
	switch level {
	case "debug":
		ConfigDebugLogger()
	default:
		ConfigProductionLogger()
	}
}
