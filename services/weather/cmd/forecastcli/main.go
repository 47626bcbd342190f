package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rmrobinson/weatherdash/lib/config"
	"github.com/rmrobinson/weatherdash/services/weather"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	dump := pflag.Bool("dump", false, "dump the full snapshot instead of the summary")

	cfg, err := config.Load(pflag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	snap := cfg.NewDashboard(logger).Load(context.Background())
	if snap.Err != nil {
		fmt.Fprintln(os.Stderr, weather.UserMessage(snap.Err))
		os.Exit(1)
	}

	if *dump {
		spew.Dump(snap)
		return
	}
	printSnapshot(os.Stdout, snap)
}

func printSnapshot(w io.Writer, snap *weather.Snapshot) {
	report := snap.Report
	fmt.Fprintf(w, "%s, %s\n", report.Location.Name, report.Location.Country)
	fmt.Fprintf(w, "%g°C %s\n", report.Current.TemperatureCelsius, report.Current.Condition.Text)
	fmt.Fprintf(w, "Humidity %d%%  Wind %g km/h  Feels Like %g°  UV %g  Pressure %g hPa  Visibility %g km\n\n",
		report.Current.HumidityPercent,
		report.Current.WindKph,
		report.Current.FeelsLikeCelsius,
		report.Current.UVIndex,
		report.Current.PressureMb,
		report.Current.VisibilityKm,
	)

	for idx := 0; idx < snap.Series.Len() && idx < len(snap.Window); idx++ {
		fmt.Fprintf(w, "%-9s %5.1f C  %s\n", snap.Series.Labels[idx], snap.Series.Values[idx], snap.Window[idx].Condition.Text)
	}
}
