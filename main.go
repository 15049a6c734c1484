package main

import (
	"flag"
	"strings"

	"blockrev/config"
	"blockrev/demo"
	"blockrev/util/log"
)

var cases string

func init() {
	flag.StringVar(&cases, "cases", "", "comma separated demo cases, overrides config")
}

func main() {
	flag.Parse()
	config.Load(true)
	log.Init(config.DebugMode())
	log.SetPrefix(config.GetLabel())

	results, err := run(cases)
	if err != nil {
		log.Fatal(err)
	}

	demo.Print(results)
}

// run applies the -cases override, if any, and runs the demo.
func run(override string) ([]demo.Result, error) {
	if override != "" {
		config.SetCases(strings.Split(override, ","))
	}

	return demo.Run(demo.Cases(config.GetText()), config.GetCases(), config.GetWorkers())
}
