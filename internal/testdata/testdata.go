// Package testdata loads and validates the parametrized records that drive
// scenario runs.
package testdata

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// RequiredKeys is the field set every record must carry before a scenario
// may run against it.
var RequiredKeys = []string{
	"userEmail",
	"passWord",
	"menuName",
	"subMenuName",
	"sortBy",
	"productName",
	"email",
	"lastName",
	"firstName",
	"postalCode",
	"phone",
	"phone_country_select",
}

// Record is one parametrized data row. Records are immutable once loaded;
// each drives exactly one scenario run.
type Record map[string]string

// MissingKeysError reports required fields absent from a record.
type MissingKeysError struct {
	Missing []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("test record missing required keys: %v", e.Missing)
}

type dataFile struct {
	Data []Record `json:"data"`
}

// Load reads the records from a JSON file with a top-level "data" list.
func Load(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file %s: %w", path, err)
	}
	var file dataFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse test data file %s: %w", path, err)
	}
	log.Printf("Loaded %d test records from %s", len(file.Data), path)
	return file.Data, nil
}

// Validate checks the record against the required key set. It runs before
// any browser action.
func (r Record) Validate(required []string) error {
	var missing []string
	for _, key := range required {
		if _, ok := r[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Missing: missing}
	}
	return nil
}

// Get returns the value for key, or "" when absent.
func (r Record) Get(key string) string {
	return r[key]
}

// GetOr returns the value for key, falling back when absent or empty.
func (r Record) GetOr(key, fallback string) string {
	if v, ok := r[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Name identifies the record in logs and subtest names.
func (r Record) Name() string {
	return r.GetOr("productName", "Unknown")
}
