package main

import (
	"flag"

	"github.com/edudata/scorecard/internal/conn"
	"github.com/edudata/scorecard/internal/settings"
	"github.com/edudata/scorecard/internal/table"
	"github.com/edudata/scorecard/pkg"
)

func main() {
	config_path := flag.String("config", "", "path to a yaml settings file")
	schools_path := flag.String("schools", "", "institution dataset path (overrides settings)")
	programs_path := flag.String("programs", "", "field-of-study dataset path (overrides settings)")
	port := flag.Int("port", 0, "listening port (overrides settings)")
	debug := flag.Bool("debug", false, "show debug logs")

	flag.Parse()

	s, err := settings.Load(*config_path)
	if err != nil {
		pkg.FatalLog(err)
	}
	if *schools_path != "" {
		s.SchoolsData = *schools_path
	}
	if *programs_path != "" {
		s.ProgramsData = *programs_path
	}
	if *port != 0 {
		s.Port = *port
	}
	if *debug {
		s.Debug = true
	}

	if s.Debug {
		pkg.SetLogLevel(pkg.LogLevelDebug)
	}

	store, err := table.Open(s.SchoolsData, s.ProgramsData)
	if err != nil {
		pkg.FatalLog(err)
	}

	conn.NewApp(store, &s).Listen(s.Port)
}
