package main

import (
	"flag"

	"coolchart/lib/config"
	"coolchart/lib/gui"
	"coolchart/lib/util"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	closer, err := util.SetupLogging(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	log.Infof("Starting coolchart %s", util.VersionString())
	if err := gui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
