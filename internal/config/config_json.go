package config

import (
	"encoding/json"
	"os"
)

type serverJSON struct {
	Address  *string `json:"address"`
	LogLevel *string `json:"log_level"`
}

type trackerJSON struct {
	PacketsFile *string `json:"packets_file"`
	LogLevel    *string `json:"log_level"`
}

func loadServerJSON(path string) (*serverJSON, error) {
	var cfg serverJSON
	if err := loadJSON(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadTrackerJSON(path string) (*trackerJSON, error) {
	var cfg trackerJSON
	if err := loadJSON(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
