package settings

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the process configuration: where the datasets live,
// which origins may call the API, and how the server runs.
type Settings struct {
	AppName string `yaml:"app_name"`
	Debug   bool   `yaml:"debug"`
	Port    int    `yaml:"port"`

	CorsOrigins []string `yaml:"cors_origins"`

	SchoolsData  string `yaml:"schools_data"`
	ProgramsData string `yaml:"programs_data"`
}

func Default() Settings {
	return Settings{
		AppName:      "Student Debt Calculator API",
		Port:         8000,
		CorsOrigins:  []string{"*"},
		SchoolsData:  "data/Most-Recent-Cohorts-Institution.csv",
		ProgramsData: "data/Most-Recent-Cohorts-Field-of-Study.csv",
	}
}

// Load starts from defaults, merges an optional YAML file, then
// applies SCORECARD_* environment overrides on top.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return s, errors.Wrap(err, "read settings file")
		}
		if err := yaml.Unmarshal(buf, &s); err != nil {
			return s, errors.Wrap(err, "parse settings file")
		}
	}

	s.applyEnv()
	return s, nil
}

func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv("SCORECARD_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			s.Port = port
		}
	}
	if v, ok := os.LookupEnv("SCORECARD_DEBUG"); ok {
		s.Debug = v == "1" || strings.EqualFold(v, "true")
	}
	if v, ok := os.LookupEnv("SCORECARD_CORS_ORIGINS"); ok {
		s.CorsOrigins = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv("SCORECARD_SCHOOLS_DATA"); ok {
		s.SchoolsData = v
	}
	if v, ok := os.LookupEnv("SCORECARD_PROGRAMS_DATA"); ok {
		s.ProgramsData = v
	}
}

// AllowsOrigin reports whether CORS requests from origin are
// permitted. A "*" entry allows everything.
func (s *Settings) AllowsOrigin(origin string) bool {
	for _, allowed := range s.CorsOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
