// Package config loads the optional YAML settings file. Every key has a
// default, so running without a file shows the stock chart window.
package config

// Config is the top-level settings document.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// WindowConfig sizes the chart window. Width and height are the chart
// panel's preferred size.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// RenderConfig controls headless rendering and the chart theme.
type RenderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
	Format string `yaml:"format"`
}
