package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the dms configuration, read from the environment.
type Config struct {
	APIURL    string // DMS_API_URL
	APIToken  string // DMS_API_TOKEN
	Dataset   string // DMS_DATASET, the JSONL snapshot file
	Palette   string // DMS_PALETTE, a YAML palette file
	Currency  string // DMS_CURRENCY, report only this currency
	LogLevel  string // DMS_LOG_LEVEL
	LogPretty bool   // DMS_LOG_PRETTY
	CacheDir  string // DMS_CACHE, daily cache of API responses
}

// DefaultDataset is the snapshot file used when DMS_DATASET is not set.
const DefaultDataset = "dataset.jsonl"

// LoadConfig reads the configuration from the environment, completed by the
// given env files, or by ".env" when none is given. Variables already set in
// the environment take precedence over the files. Missing files are ignored.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	vars := make(map[string]string)
	for _, file := range files {
		env, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		for k, v := range env {
			vars[k] = v
		}
	}
	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vars[key]
	}

	cfg := Config{
		APIURL:   get("DMS_API_URL"),
		APIToken: get("DMS_API_TOKEN"),
		Dataset:  get("DMS_DATASET"),
		Palette:  get("DMS_PALETTE"),
		Currency: get("DMS_CURRENCY"),
		LogLevel: get("DMS_LOG_LEVEL"),
		CacheDir: get("DMS_CACHE"),
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if s := get("DMS_LOG_PRETTY"); s != "" {
		pretty, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, errors.New("DMS_LOG_PRETTY must be a boolean, got " + strconv.Quote(s))
		}
		cfg.LogPretty = pretty
	}
	return cfg, nil
}
