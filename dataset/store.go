package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// ErrNotCached is returned by Store.Load when no fresh copy exists.
var ErrNotCached = errors.New("not cached")

// colorRecord is one cached entry.
type colorRecord struct {
	ID       uint   `gorm:"primarykey"`
	Source   string `gorm:"index;not null"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null"`
	Hex      string `gorm:"size:7;not null"`
}

// fetchRecord remembers when a source was last fetched.
type fetchRecord struct {
	Source    string `gorm:"primaryKey"`
	FetchedAt time.Time
	Count     int
}

// Store caches fetched lists by source.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if err := db.AutoMigrate(&colorRecord{}, &fetchRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the cached list for source.
func (s *Store) Save(source string, colors []Color, at time.Time) error {
	records := make([]colorRecord, len(colors))
	for i, c := range colors {
		records[i] = colorRecord{Source: source, Position: i, Name: c.Name, Hex: c.Hex}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source = ?", source).Delete(&colorRecord{}).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.CreateInBatches(records, 200).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&fetchRecord{Source: source, FetchedAt: at, Count: len(colors)}).Error
	})
}

// Load returns the cached list for source. A copy older than maxAge at now
// is reported as ErrNotCached; maxAge <= 0 accepts any age.
func (s *Store) Load(source string, maxAge time.Duration, now time.Time) ([]Color, error) {
	var rec fetchRecord
	err := s.db.Where("source = ?", source).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", source, ErrNotCached)
	}
	if err != nil {
		return nil, err
	}
	if maxAge > 0 && now.Sub(rec.FetchedAt) > maxAge {
		return nil, fmt.Errorf("%s: stale since %s: %w", source, rec.FetchedAt.Add(maxAge).Format(time.RFC3339), ErrNotCached)
	}

	var records []colorRecord
	if err := s.db.Where("source = ?", source).Order("position").Find(&records).Error; err != nil {
		return nil, err
	}
	colors := make([]Color, len(records))
	for i, r := range records {
		colors[i] = Color{Name: r.Name, Hex: r.Hex}
	}
	return colors, nil
}

// FetchedAt reports when source was last saved.
func (s *Store) FetchedAt(source string) (time.Time, bool) {
	var rec fetchRecord
	if err := s.db.Where("source = ?", source).First(&rec).Error; err != nil {
		return time.Time{}, false
	}
	return rec.FetchedAt, true
}

// Close closes the database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
