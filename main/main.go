package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/warnings.v0"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/io"
	"github.com/phil-mansfield/gobez/render"
)

func main() {
	var (
		config string
		exampleConfig bool
		threads int
	)

	flag.StringVar(
		&config, "Config", "",
		"Configuration file listing the curves and surfaces to evaluate.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.IntVar(
		&threads, "Threads", 0,
		"Number of goroutines used per curve or surface. Overrides the " +
			"'Threads' value in [Output].",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleConfigFile)
		return
	} else if config == "" {
		log.Fatal("Must supply a config file with -Config or use -ExampleConfig.")
	} else if threads < 0 {
		log.Fatalf("-Threads must be non-negative, but is %d.", threads)
	}

	con, cerr := io.ReadConfig(config)
	if err := warnings.FatalOnly(cerr); err != nil { log.Fatal(err.Error()) }
	if threads > 0 { con.Output.Threads = threads }

	logger, err := newLogger(&con.Output)
	if err != nil { log.Fatal(err.Error()) }
	defer logger.Sync()

	for _, w := range warnings.WarningsOnly(cerr) {
		logger.Warn("Ignoring config entry", zap.String("file", config), zap.Error(w))
	}

	rs, err := render.New(&con.Output)
	if err != nil { logger.Fatal("Could not create renderers", zap.Error(err)) }

	job := &Job{
		Evaluator: bezier.Evaluator{Workers: con.Output.Threads},
		Renderer: render.Multi(rs),
		Log: logger,
	}
	if err := job.Run(con); err != nil {
		logger.Error("Job failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
