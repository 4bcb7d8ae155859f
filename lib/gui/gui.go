package gui

/*
A desktop time-series chart viewer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"fmt"
	"io"
	"strings"

	"coolchart/lib/chart"
	"coolchart/lib/config"
	"coolchart/lib/demo"
	"coolchart/lib/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

const AppID = "org.coolchart.TimeSeriesDemo"

var log = logrus.StandardLogger()

// ChartWindow is the application frame holding a single chart panel.
type ChartWindow struct {
	App    fyne.App
	Window fyne.Window
	Panel  *ChartPanel

	cfg *config.Config
}

// RunApp builds the demo chart and shows it until the window is closed.
func RunApp(cfg *config.Config) error {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(&CustomTheme{})

	cw, err := NewChartWindow(myApp, cfg)
	if err != nil {
		return err
	}
	cw.Window.CenterOnScreen()
	log.Infof("Showing %q", cfg.Window.Title)
	cw.Window.ShowAndRun()
	return nil
}

// NewChartWindow creates the window for the demo chart inside a.
func NewChartWindow(a fyne.App, cfg *config.Config) (*ChartWindow, error) {
	th, err := chart.ThemeByName(cfg.Render.Theme)
	if err != nil {
		return nil, err
	}
	c := demo.CreateChartWithTheme(th, demo.BuildDataset())

	panel, err := NewChartPanel(c)
	if err != nil {
		return nil, err
	}
	panel.MouseWheelEnabled = true
	panel.FillZoomRectangle = true

	cw := &ChartWindow{
		App:    a,
		Window: a.NewWindow(cfg.Window.Title),
		Panel:  panel,
		cfg:    cfg,
	}
	cw.Window.SetContent(panel)
	cw.Window.SetMainMenu(cw.mainMenu())
	cw.Window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	cw.Window.SetOnClosed(panel.Close)
	return cw, nil
}

func (cw *ChartWindow) mainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Save as PNG...", func() { cw.showSaveDialog("png") }),
			fyne.NewMenuItem("Save as SVG...", func() { cw.showSaveDialog("svg") }),
			fyne.NewMenuItem("Save as PDF...", func() { cw.showSaveDialog("pdf") }),
			fyne.NewMenuItem("Save as HTML...", func() { cw.showSaveDialog("html") }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Quit", func() {
				cw.App.Quit()
			}),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Zoom In", cw.Panel.ZoomIn),
			fyne.NewMenuItem("Zoom Out", cw.Panel.ZoomOut),
			fyne.NewMenuItem("Auto Range", cw.Panel.RestoreAutoBounds),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				ShowAboutDialog(cw.Window)
			}),
		),
	)
}

// exportSize is the panel size, or the configured render size before
// the panel has been laid out.
func (cw *ChartWindow) exportSize() (int, int) {
	size := cw.Panel.Size()
	if size.Width < 1 || size.Height < 1 {
		return cw.cfg.Render.Width, cw.cfg.Render.Height
	}
	return int(size.Width), int(size.Height)
}

// WriteChart writes the visible part of the chart in format.
func (cw *ChartWindow) WriteChart(format string, w io.Writer) error {
	width, height := cw.exportSize()
	return chart.Export(cw.Panel.Chart(), cw.Panel.Viewport(), format, width, height, w)
}

func (cw *ChartWindow) showSaveDialog(format string) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ShowError("Save Chart Error", err, cw.Window)
			return
		}
		if writer == nil {
			// User canceled the dialog
			return
		}
		defer writer.Close()

		if err := cw.WriteChart(format, writer); err != nil {
			ShowError("Failed to Save Chart", err, cw.Window)
			return
		}
		log.Infof("Saved chart to %s", writer.URI().Path())
	}, cw.Window)

	saveDialog.SetFileName("chart." + format)
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{"." + format}))
	saveDialog.Show()
}

func ShowError(title string, err error, parent fyne.Window) {
	log.WithError(err).Error(title)
	dialog.ShowError(fmt.Errorf("%s: %v", title, err), parent)
}

func ShowAboutDialog(parent fyne.Window) {
	dialog.ShowCustom("About", "Close",
		container.NewVBox(
			widget.NewLabelWithStyle(demo.ChartTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabel(fmt.Sprintf("Version: %s", util.VersionString())),
			widget.NewLabel("Formats: "+strings.Join(chart.Formats(), ", ")),
		), parent)
}
