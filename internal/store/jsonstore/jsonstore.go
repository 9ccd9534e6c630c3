package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/inventorydemo/internal/model"
)

// JSON-backed inventory seed. Single file, human-readable:
//
//	[{"item": "apples", "quantity": 50}, {"item": "pears", "quantity": 3}]
//
// Read-only; nothing here writes the file back.

// Load reads entries from path in file order.
func Load(path string) ([]model.Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var entries []model.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i, e := range entries {
		if e.Item == "" {
			return nil, fmt.Errorf("entry %d: empty item name", i)
		}
	}
	return entries, nil
}

// LoadInventory is Load followed by model.NewInventory.
func LoadInventory(path string) (*model.Inventory, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	return model.NewInventory(entries...), nil
}
