package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"storefront/internal/storage"
)

// Writes a sample catalogue data file so the API can be exercised without
// going through the seed path first.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := storage.Seed()

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode products: %v", err)
	}

	path := filepath.Join(dataDir, "products.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	log.Printf("Wrote %d products to %s", len(products), path)
}
