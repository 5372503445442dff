// Package migration tracks schema migrations in a migrations table and
// runs them in registration order, grouped into batches for rollback.
package migration

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migrator is a named, reversible schema change.
type Migrator interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

type entry struct {
	name string
	m    Migrator
}

type record struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255;uniqueIndex"`
	Batch     int
	CreatedAt time.Time
}

func (record) TableName() string { return "migrations" }

var registry []entry

// Register adds a migration to the registry. Call from init() in the
// migration files; registration order is run order.
func Register(name string, m Migrator) {
	registry = append(registry, entry{name: name, m: m})
}

// Run applies all pending migrations as a single new batch.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("prepare migrations table: %w", err)
	}

	var applied []record
	if err := db.Find(&applied).Error; err != nil {
		return err
	}
	done := map[string]bool{}
	batch := 0
	for _, r := range applied {
		done[r.Name] = true
		if r.Batch > batch {
			batch = r.Batch
		}
	}
	batch++

	for _, e := range registry {
		if done[e.name] {
			continue
		}
		m := e.m
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&record{Name: e.name, Batch: batch}).Error
		}); err != nil {
			return fmt.Errorf("migration %s: %w", e.name, err)
		}
	}
	return nil
}

// Rollback reverts every migration in the most recent batch, newest
// first.
func Rollback(db *gorm.DB) error {
	if err := db.AutoMigrate(&record{}); err != nil {
		return err
	}

	var last record
	if err := db.Order("batch desc").First(&last).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	var batchRecords []record
	if err := db.Where("batch = ?", last.Batch).Order("id desc").Find(&batchRecords).Error; err != nil {
		return err
	}

	byName := map[string]Migrator{}
	for _, e := range registry {
		byName[e.name] = e.m
	}

	for _, r := range batchRecords {
		m, ok := byName[r.Name]
		if !ok {
			return fmt.Errorf("migration %s is applied but not registered", r.Name)
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&record{}, r.ID).Error
		}); err != nil {
			return fmt.Errorf("rollback %s: %w", r.Name, err)
		}
	}
	return nil
}

// Status lists every registered migration with the batch it was
// applied in, or 0 when still pending.
func Status(db *gorm.DB) ([]string, map[string]int, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, nil, err
	}
	var applied []record
	if err := db.Find(&applied).Error; err != nil {
		return nil, nil, err
	}
	names := make([]string, len(registry))
	batches := map[string]int{}
	for i, e := range registry {
		names[i] = e.name
		batches[e.name] = 0
	}
	for _, r := range applied {
		batches[r.Name] = r.Batch
	}
	return names, batches, nil
}
