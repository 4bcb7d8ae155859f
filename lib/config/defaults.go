package config

const (
	DefaultWindowTitle  = "coolness charted over time"
	DefaultWindowWidth  = 500
	DefaultWindowHeight = 270
	DefaultLogLevel     = "info"
	DefaultRenderWidth  = 800
	DefaultRenderHeight = 500
	DefaultTheme        = "jfree"
	DefaultFormat       = "png"
)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Render.Width == 0 {
		c.Render.Width = DefaultRenderWidth
	}
	if c.Render.Height == 0 {
		c.Render.Height = DefaultRenderHeight
	}
	if c.Render.Theme == "" {
		c.Render.Theme = DefaultTheme
	}
	if c.Render.Format == "" {
		c.Render.Format = DefaultFormat
	}
}
