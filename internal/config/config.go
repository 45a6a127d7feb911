package config

import (
	"flag"
	"os"
)

const defaultStoreName = "FolioVerse"

type Config struct {
	StoreName string
	Debug     bool
}

func ReadConfig() (*Config, error) {
	var storeName string
	var debug bool
	flag.StringVar(&storeName, "store", defaultStoreName, "store name shown in the welcome banner")
	flag.BoolVar(&debug, "debug", false, "flag to set Debug logger level")
	flag.Parse()

	if env := os.Getenv("STORE_NAME"); env != "" {
		storeName = env
	}
	return &Config{
		StoreName: storeName,
		Debug:     debug,
	}, nil
}
