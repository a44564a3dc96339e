package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bobinette/pdfroulette"
	"github.com/bobinette/pdfroulette/bolt"
	"github.com/bobinette/pdfroulette/catalog"
	"github.com/bobinette/pdfroulette/log"
	"github.com/bobinette/pdfroulette/services"
)

var (
	// flags
	env string

	// logger
	logger log.Logger

	// configuration
	cfg Configuration

	// drivers
	boltDriver *bolt.Driver

	// services
	pickerService *services.PickerService
)

type Configuration struct {
	Catalog struct {
		URL  string `toml:"url"`
		File string `toml:"file"`
		// CacheTTL is in seconds. 0 caches the catalog for the lifetime
		// of the process: it only changes when the offline toolchain runs.
		CacheTTL int `toml:"cache_ttl"`
	} `toml:"catalog"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Picker struct {
		MaxHistorySize  int  `toml:"max_history_size"`
		RememberFilters bool `toml:"remember_filters"`
		URLParameters   bool `toml:"url_parameters"`
	} `toml:"picker"`
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "pdfroulette",
	Short: "Pick random pdfs from the curated catalog",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		if err := toml.Unmarshal(cfgData, &cfg); err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}

		// Create logger
		logger = log.New(env)

		// Create stores
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt:", err)
		}
		histories := &bolt.HistoryRepository{Driver: boltDriver, MaxSize: cfg.Picker.MaxHistorySize}
		filters := &bolt.FilterRepository{Driver: boltDriver}

		// Create catalog provider
		var provider pdfroulette.CatalogProvider
		if cfg.Catalog.File != "" {
			provider = catalog.NewFileProvider(cfg.Catalog.File)
		} else {
			client := &http.Client{Timeout: 10 * time.Second}
			provider = catalog.NewHTTPProvider(client, cfg.Catalog.URL)
		}
		provider = catalog.NewCache(provider, time.Duration(cfg.Catalog.CacheTTL)*time.Second)

		// Create services
		pickerService = services.NewPickerService(provider, histories, filters, logger, services.Options{
			RememberFilters: cfg.Picker.RememberFilters,
			URLParameters:   cfg.Picker.URLParameters,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}
