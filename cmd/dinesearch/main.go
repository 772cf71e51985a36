// Copyright 2025 The DineSearch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dinesearch restaurant search server, CLI [DBG]
and terminal search screen.

Note: This is a BETA release. APIs and functionality may rapidly change.

dinesearch filters an in-memory restaurant catalog by free text and by
selected tags, and suggests restaurant names and tags while the user types.
It can run as a MessagePack IPC server for a front end, as a line CLI for
debugging, or as an interactive terminal screen.

# Usage

Start the server with the embedded catalog:

	dinesearch

Load a custom catalog and enable debug mode:

	dinesearch -catalog restaurants.toml -d

Run the line CLI or the terminal screen:

	dinesearch -c
	dinesearch -tui -facet location

# Catalog

Catalogs are TOML files with one [[restaurant]] table per record:

	[[restaurant]]
	id = "1"
	name = "Italian Bistro"
	tags = ["Italian", "Pasta", "Fine Dining"]
	location = "Downtown"
	description = "Authentic Italian cuisine"

Records of the home feed also carry section, rating, delivery_time and deal.

# Configuration

The TOML config is created with defaults on first run, see package config.

# IPC Protocol

The server reads MessagePack maps from stdin and writes one response per
request to stdout:

	{"id": "1", "op": "query", "q": "pi"}
	{"id": "1", "q": "pi", "sel": [], "f": "all", "tags": [...], "r": [...], "s": [{"k": "name", "v": "Pizza Corner"}, {"k": "tag", "v": "Pizza"}], "e": false, "c": 1, "t": 12}

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run the line CLI instead of the server
	-tui
	    Run the interactive search screen
	-catalog string
	    TOML catalog to search (default: embedded seed)
	-feed string
	    TOML catalog for the home feed (default: embedded seed)
	-config string
	    Path to a custom config file
	-facet string
	    Starting facet: all, cuisine or location
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/dinesearch/internal/cli"
	"github.com/bastiangx/dinesearch/internal/logger"
	"github.com/bastiangx/dinesearch/internal/tui"
	"github.com/bastiangx/dinesearch/pkg/catalog"
	"github.com/bastiangx/dinesearch/pkg/config"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/bastiangx/dinesearch/pkg/server"
	"github.com/bastiangx/dinesearch/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "dinesearch"
	gh      = "https://github.com/bastiangx/dinesearch"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the catalog, engine and session into the selected front end.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tuiMode := flag.Bool("tui", false, "Run the interactive search screen")
	catalogPath := flag.String("catalog", "", "TOML catalog to search (default: embedded seed)")
	feedPath := flag.String("feed", "", "TOML catalog for the home feed (default: embedded seed)")
	configPath := flag.String("config", "", "Path to custom config file")
	facetName := flag.String("facet", "", "Starting facet: all, cuisine or location")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Configure(os.Stderr, *debugMode)

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	records, err := loadCatalog(*catalogPath, appConfig.Catalog.Path, catalog.Seed)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	feedRecords, err := loadCatalog(*feedPath, appConfig.Catalog.FeedPath, catalog.FeedSeed)
	if err != nil {
		log.Fatalf("Failed to load feed: %v", err)
	}
	sections := feed.Build(feedRecords, appConfig.Catalog.FeedOrder...)

	facet := appConfig.Facet()
	if *facetName != "" {
		facet, err = index.ParseFacet(*facetName)
		if err != nil {
			log.Fatalf("Invalid -facet: %v", err)
		}
	}

	engine := search.NewEngine(records)
	sess := session.New(engine, session.WithFacet(facet))
	log.Debug("Session ready", "records", records.Len(), "sections", len(sections), "facet", facet)

	switch {
	case *tuiMode:
		if err := tui.Run(sess, sections); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	case *cliMode:
		sigHandler()
		log.SetReportTimestamp(false)
		opts := cli.Options{
			ShowDescriptions: appConfig.CLI.ShowDescriptions,
			Color:            appConfig.CLI.Color,
		}
		if err := cli.NewInputHandler(sess, sections, opts, os.Stdin, os.Stdout).Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		sigHandler()
		log.Debug("spawning IPC")
		srv := server.NewServer(sess, sections, appConfig, os.Stdin, os.Stdout)
		if *debugMode {
			showStartupInfo(records.Len(), activeConfigPath)
		}
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// loadCatalog prefers the flag path, then the config path, then the seed.
func loadCatalog(flagPath, configPath string, seed func() *catalog.Catalog) (*catalog.Catalog, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return seed(), nil
	}
	log.Debugf("Loading catalog from: %s", path)
	return catalog.Load(path)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#6200ee", Dark: "#bb86fc"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ DineSearch ] Find something to eat, fast")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(records int, configPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" DineSearch ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("catalog: %d restaurants", records)
	log.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
