package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	logout = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		// Format the component name
		FormatPrepare: func(e map[string]interface{}) error {
			e["component"] = fmt.Sprintf("[%s]", e["component"])
			return nil
		},
		// Change the order in which things appear
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
		// Prevent the component from being printed again
		FieldsExclude: []string{"component"},
	}
)

// GetLogger returns a formatted logger for the named component
func GetLogger(component string) zerolog.Logger {
	// Disable logging based on the GLOG environment variable
	var logLevel zerolog.Level
	if os.Getenv("GLOG") == "no" {
		logLevel = zerolog.Disabled
	} else {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(logout).
		Level(logLevel).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
