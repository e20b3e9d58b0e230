package main

import (
	"github.com/spf13/cobra"

	"github.com/corn12138/lowcode/internal/catalog"
	"github.com/corn12138/lowcode/internal/config"
	"github.com/corn12138/lowcode/internal/logger"
	"github.com/corn12138/lowcode/internal/store"
)

// appContext bundles the services every command needs.
type appContext struct {
	cfg   *config.Config
	log   *logger.Logger
	store *store.Store
}

// loadApp reads the config, builds the logger and assembles the component
// store: built-in catalogs first, then configured files, then --catalog files.
func loadApp(cmd *cobra.Command, operation string, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the file passed with --config.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "configuring logging", err, "Use one of trace, debug, info, warn or error for log.level.")
	}

	builder := store.NewBuilder(log)
	for _, regs := range catalog.Builtin() {
		if err := builder.Add(regs...); err != nil {
			return nil, newCommandError(operation, "registering built-in components", err, "This is a bug; please report it.")
		}
	}

	paths := append(append([]string{}, cfg.Catalogs...), flags.catalogs...)
	for _, path := range paths {
		if err := builder.AddFile(path); err != nil {
			return nil, newCommandError(operation, "loading catalog "+path, err, "Fix the catalog file or remove it from the configuration.")
		}
	}

	s, err := builder.Build()
	if err != nil {
		return nil, newCommandError(operation, "assembling component store", err, "Make every component type unique and its schemas well formed.")
	}

	return &appContext{cfg: cfg, log: log, store: s}, nil
}
