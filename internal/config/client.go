package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultClientFileName = "taskcal.toml"
	DefaultClientDBName   = "taskcal.db"
)

// Keymap binds terminal actions to keys. A binding may list several keys
// separated by commas, e.g. "h,left".
type Keymap struct {
	Quit           string `toml:"quit"`
	Left           string `toml:"left"`
	Right          string `toml:"right"`
	Up             string `toml:"up"`
	Down           string `toml:"down"`
	NextItem       string `toml:"next_item"`
	NextMonth      string `toml:"next_month"`
	PrevMonth      string `toml:"prev_month"`
	Today          string `toml:"today"`
	Grab           string `toml:"grab"`
	Drop           string `toml:"drop"`
	Cancel         string `toml:"cancel"`
	Add            string `toml:"add"`
	Toggle         string `toml:"toggle"`
	Delete         string `toml:"delete"`
	CycleCategory  string `toml:"cycle_category"`
	CycleTimeFrame string `toml:"cycle_time_frame"`
	CycleStatus    string `toml:"cycle_status"`
}

// Matches reports whether key is one of the binding's keys.
func Matches(binding, key string) bool {
	for _, k := range strings.Split(binding, ",") {
		if k == key || (k == "space" && key == " ") {
			return true
		}
	}
	return false
}

// ClientConfig is the terminal client's TOML file.
type ClientConfig struct {
	DBPath        string  `toml:"db_path"`
	UserID        int64   `toml:"user_id"`
	Timezone      string  `toml:"timezone"`
	KeepTimeOfDay bool    `toml:"keep_time_of_day"`
	DragThreshold float64 `toml:"drag_threshold"`
	Keys          Keymap  `toml:"keys"`
}

// LoadOrCreateClient reads path, writing the defaults there first if the
// file does not exist. Missing keys keep their defaults.
func LoadOrCreateClient(path string) (ClientConfig, error) {
	cfg := defaultClientConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeClient(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultClientDBName
	}
	if cfg.UserID <= 0 {
		cfg.UserID = 1
	}
	return cfg, nil
}

func writeClient(path string, cfg ClientConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		DBPath:        DefaultClientDBName,
		UserID:        1,
		KeepTimeOfDay: true,
		DragThreshold: 8,
		Keys: Keymap{
			Quit:           "q,ctrl+c",
			Left:           "h,left",
			Right:          "l,right",
			Up:             "k,up",
			Down:           "j,down",
			NextItem:       "tab",
			NextMonth:      "n",
			PrevMonth:      "p",
			Today:          "t",
			Grab:           "g",
			Drop:           "enter",
			Cancel:         "esc",
			Add:            "a",
			Toggle:         "x",
			Delete:         "d",
			CycleCategory:  "c",
			CycleTimeFrame: "f",
			CycleStatus:    "s",
		},
	}
}
