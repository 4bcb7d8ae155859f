// Command coolchart-tools renders the demo chart and dumps its dataset
// without opening a window.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"coolchart/lib/chart"
	"coolchart/lib/config"
	"coolchart/lib/demo"
	"coolchart/lib/export"
	"coolchart/lib/util"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

type options struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	logCloser  io.Closer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:          "coolchart-tools",
		Short:        "Render the coolness chart and export its data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAndValidate(o.configPath)
			if err != nil {
				return err
			}
			if o.logLevel != "" {
				cfg.Logging.Level = o.logLevel
			}
			closer, err := util.SetupLogging(cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return err
			}
			o.cfg, o.logCloser = cfg, closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logCloser != nil {
				o.logCloser.Close()
			}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newRenderCmd(o), newDumpCmd(o), newVersionCmd())
	return rootCmd
}

func newRenderCmd(o *options) *cobra.Command {
	var (
		format, out   string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to an image or HTML page",
		Long: `render draws the chart over its full data range. The format is taken
from --format, then from the extension of --out, then from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = o.cfg.Render.Width
			}
			if !cmd.Flags().Changed("height") {
				height = o.cfg.Render.Height
			}
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			if format == "" {
				format = o.cfg.Render.Format
			}

			theme, err := chart.ThemeByName(o.cfg.Render.Theme)
			if err != nil {
				return err
			}
			c := demo.CreateChartWithTheme(theme, demo.BuildDataset())
			v, err := chart.AutoRange(c)
			if err != nil {
				return err
			}

			if out != "" && strings.EqualFold(format, strings.TrimPrefix(filepath.Ext(out), ".")) {
				return chart.ExportFile(c, v, out, width, height)
			}
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return chart.Export(c, v, format, width, height, w)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+strings.Join(chart.Formats(), ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&width, "width", config.DefaultRenderWidth, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultRenderHeight, "Image height in pixels")
	return cmd
}

func newDumpCmd(o *options) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the chart's dataset as text, CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demo.BuildDataset()
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return export.Write(d, format, w)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Dataset format: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), util.VersionString())
		},
	}
}

// writeOutput runs write against path, or against stdout when path is
// empty. A failed write removes the partial file.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Infof("Wrote %s", path)
	return nil
}
