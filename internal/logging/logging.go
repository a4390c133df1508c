// internal/logging/logging.go
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/config"
)

// Setup configures the global logrus logger: JSON in production, text with
// full timestamps elsewhere.
func Setup(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
