package kaggle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials authenticate requests against the Kaggle API.
type Credentials struct {
	Username string `json:"username"`
	Key      string `json:"key"`
}

func (c *Credentials) complete() bool {
	return c != nil && c.Username != "" && c.Key != ""
}

// ResolveCredentials looks up Kaggle credentials from the environment
// first (KAGGLE_USERNAME and KAGGLE_KEY), then from the kaggle.json
// config file in KAGGLE_CONFIG_DIR or ~/.kaggle. Returns nil without
// error when nothing is configured; public datasets download without
// credentials.
func ResolveCredentials() (*Credentials, error) {
	creds := &Credentials{
		Username: os.Getenv("KAGGLE_USERNAME"),
		Key:      os.Getenv("KAGGLE_KEY"),
	}
	if creds.complete() {
		return creds, nil
	}

	path, err := credentialsPath()
	if err != nil {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	var fromFile Credentials
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if !fromFile.complete() {
		return nil, nil
	}
	return &fromFile, nil
}

func credentialsPath() (string, error) {
	if dir := os.Getenv("KAGGLE_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "kaggle.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kaggle", "kaggle.json"), nil
}
