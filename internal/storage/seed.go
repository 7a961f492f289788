package storage

import (
	"storefront/internal/model"

	"github.com/google/uuid"
)

// Seed returns the initial catalogue used when no persisted state exists.
// Identifiers are generated per boot; the set is persisted on the first
// successful mutation, after which the file is authoritative.
func Seed() []model.Product {
	products := []model.Product{
		{
			Name:        "XYZ Pro Smartphone",
			Category:    "Smartphones",
			Description: "6.7\" display, 128 GB storage, 50 MP triple camera",
			Price:       49990,
			Stock:       15,
			Rating:      4.8,
			Image:       "/images/product-1.jpg",
		},
		{
			Name:        "UltraBook 15 Laptop",
			Category:    "Laptops",
			Description: "15.6\" screen, 512 GB SSD, 16 GB RAM, RTX 3060",
			Price:       89990,
			Stock:       8,
			Rating:      4.9,
			Image:       "/images/product-2.jpg",
		},
		{
			Name:        "AirSound Pro Headphones",
			Category:    "Audio",
			Description: "Wireless, active noise cancellation, 30 hours of playback",
			Price:       12990,
			Stock:       25,
			Rating:      4.7,
			Image:       "/images/product-3.jpg",
		},
		{
			Name:        "TabPro 11 Tablet",
			Category:    "Tablets",
			Description: "11\" screen, stylus included, 128 GB, Wi-Fi",
			Price:       34990,
			Stock:       12,
			Rating:      4.6,
			Image:       "/images/product-4.jpg",
		},
		{
			Name:        "Watch X Smartwatch",
			Category:    "Accessories",
			Description: "Health tracking, GPS, heart-rate monitor, 7-day battery",
			Price:       15990,
			Stock:       20,
			Rating:      4.5,
			Image:       "/images/product-5.jpg",
		},
		{
			Name:        "GameBox Console",
			Category:    "Gaming",
			Description: "1 TB SSD, two controllers, 4K support",
			Price:       45990,
			Stock:       5,
			Rating:      4.9,
			Image:       "/images/product-6.jpg",
		},
		{
			Name:        "UltraWide 34\" Monitor",
			Category:    "Monitors",
			Description: "34\" curved, 144 Hz, 1 ms, HDR400",
			Price:       39990,
			Stock:       7,
			Rating:      4.8,
			Image:       "/images/product-7.jpg",
		},
		{
			Name:        "Mechanical Pro Keyboard",
			Category:    "Peripherals",
			Description: "Mechanical switches, RGB backlight",
			Price:       6990,
			Stock:       30,
			Rating:      4.7,
			Image:       "/images/product-8.jpg",
		},
		{
			Name:        "Gaming X Mouse",
			Category:    "Peripherals",
			Description: "16000 DPI, 8 programmable buttons, RGB",
			Price:       3990,
			Stock:       40,
			Rating:      4.6,
			Image:       "/images/product-9.jpg",
		},
		{
			Name:        "Portable SSD 2TB",
			Category:    "Storage",
			Description: "External SSD, USB-C, 1000 MB/s read speed",
			Price:       8990,
			Stock:       18,
			Rating:      4.5,
			Image:       "/images/product-10.jpg",
		},
	}

	for i := range products {
		products[i].ID = uuid.NewString()
	}
	return products
}
