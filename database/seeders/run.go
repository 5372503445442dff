// Package seeders provides a registry of database seed functions.
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
//
// and run the whole registry with: apotek seed
package seeders

import (
	"fmt"

	"gorm.io/gorm"
)

// SeederFunc is the signature for a seed function. Seeders must be
// idempotent: running them against an already seeded database should
// change nothing.
type SeederFunc func(db *gorm.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var entries []seederEntry

// Register adds a seeder to the registry. Call from init() in the
// seeder files; registration order is run order.
func Register(name string, fn SeederFunc) {
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in order, stopping on the
// first error.
func RunAll(db *gorm.DB) error {
	for _, e := range entries {
		fmt.Printf("  • seeding %s … ", e.name)
		if err := e.fn(db); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
