package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output.
	Label string

	// Workers sets the number of goroutines running demo cases.
	Workers int

	// Cases selects demo cases by name, all of them when empty.
	Cases []string

	// Text is the read-only source of the text case.
	Text string
}

var cfg config

// Load reads config.yml from ./config or ../config.
func Load(display bool) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	// Incase test cases require loading configs
	v.AddConfigPath("../config")

	if err := load(v, display); err != nil {
		panic(err)
	}
}

// LoadFrom reads the given config file.
func LoadFrom(file string) error {
	v := viper.New()
	v.SetConfigFile(file)

	return load(v, false)
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// GetLabel returns custom label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetWorkers returns the number of working goroutines.
func GetWorkers() int {
	return cfg.Workers
}

// GetCases returns the names of the selected demo cases.
func GetCases() []string {
	return cfg.Cases
}

// SetCases overrides the selected demo cases, e.g., from a flag.
func SetCases(cases []string) {
	c := config{Cases: cases}
	normalizeCases(&c)
	cfg.Cases = c.Cases
}

// GetText returns the source text of the text case.
func GetText() string {
	return cfg.Text
}

/* ------------------------------
         Utility Functions
------------------------------ */

func load(v *viper.Viper, display bool) error {
	v.SetDefault("workers", 1)
	v.SetDefault("text", "hello there")

	err := v.ReadInConfig()
	if err != nil {
		return err
	}

	var c config
	err = v.Unmarshal(&c)
	if err != nil {
		return err
	}

	normalizeCases(&c)

	if err := validateConfig(&c); err != nil {
		return err
	}

	if display {
		content, err := json.MarshalIndent(c, "", "    ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, string(content))
	}

	cfg = c
	return nil
}

func normalizeCases(c *config) {
	cases := make([]string, 0, len(c.Cases))
	for _, name := range c.Cases {
		name = strings.TrimSpace(name)
		if name != "" {
			cases = append(cases, name)
		}
	}

	c.Cases = cases
}

func validateConfig(c *config) error {
	if c.Workers <= 0 {
		return errors.New("workers must be great than 0")
	}

	return nil
}
