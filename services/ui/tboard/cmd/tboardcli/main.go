package main

import (
	"context"
	"os"
	"time"

	"github.com/rivo/tview"
	"github.com/rmrobinson/weatherdash/lib/config"
	"github.com/rmrobinson/weatherdash/services/ui/tboard/widget"
	"github.com/rmrobinson/weatherdash/services/weather"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load(pflag.CommandLine, os.Args[1:])
	if err != nil {
		panic(err)
	}

	app := tview.NewApplication()

	// The terminal belongs to tview, so log lines go to the debug widget instead of stderr.
	debugView := widget.NewDebug(app, 50)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(NewWidgetSink(debugView)),
		zapcore.DebugLevel,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timeView := widget.NewTime(app, time.Local)
	go timeView.Run(ctx)

	headlineView := widget.NewWeatherHeadline(app)
	chartView := widget.NewTemperatureChart(app)
	conditionView := widget.NewWeatherCondition(app)
	forecastView := widget.NewWeatherForecast(app, weather.WindowSize)
	statusView := widget.NewStatus(app)

	dashboard := cfg.NewDashboard(logger)
	go func() {
		snap := dashboard.Load(ctx)
		statusView.Refresh(weather.UserMessage(snap.Err))
		if snap.Err != nil {
			return
		}

		timeView.SetLocation(snap.Report.Location.TimeZone)
		headlineView.Refresh(snap.Report)
		conditionView.Refresh(snap.Report.Current)
		chartView.Refresh(snap.Series)
		forecastView.Refresh(snap.Window, snap.Series)
	}()

	leftCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(timeView, 4, 1, false).
		AddItem(headlineView, 8, 1, false).
		AddItem(forecastView, weather.WindowSize+2, 1, false).
		AddItem(debugView, 0, 1, false)

	rightCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(chartView, 0, 2, false).
		AddItem(conditionView, 0, 1, false).
		AddItem(statusView, 1, 1, false)

	layout := tview.NewFlex().
		AddItem(leftCol, 32, 1, false).
		AddItem(rightCol, 0, 1, true)
	if err := app.SetRoot(layout, true).SetFocus(layout).Run(); err != nil {
		panic(err)
	}
}
