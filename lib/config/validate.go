package config

import (
	"errors"
	"fmt"

	"coolchart/lib/chart"

	"github.com/sirupsen/logrus"
)

const maxDimension = 10000

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Window.Title == "" {
		return errors.New("window.title is required")
	}
	if err := validateSize("window", c.Window.Width, c.Window.Height); err != nil {
		return err
	}
	if err := validateSize("render", c.Render.Width, c.Render.Height); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := chart.ThemeByName(c.Render.Theme); err != nil {
		return fmt.Errorf("render.theme: %w", err)
	}
	if !knownFormat(c.Render.Format) {
		return fmt.Errorf("render.format %q is not one of %v", c.Render.Format, chart.Formats())
	}
	return nil
}

func validateSize(prefix string, w, h int) error {
	if w < 1 || w > maxDimension {
		return fmt.Errorf("%s.width must be between 1 and %d, got %d", prefix, maxDimension, w)
	}
	if h < 1 || h > maxDimension {
		return fmt.Errorf("%s.height must be between 1 and %d, got %d", prefix, maxDimension, h)
	}
	return nil
}

func knownFormat(f string) bool {
	for _, k := range chart.Formats() {
		if k == f {
			return true
		}
	}
	return false
}
