// Package repair fixes restaurant snapshots whose category column holds a
// promotional tag instead of a cuisine.
package repair

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/chrisdamba/foodcatalogsim/internal/catalog"
	"github.com/chrisdamba/foodcatalogsim/internal/export"
)

const BackupSuffix = ".backup"

// promotionalFileTags are the slugged tags whose product files are discarded.
var promotionalFileTags = []string{"novidade", "novo", "promocao"}

var (
	categoryColumns = []string{"category", "categoria"}
	nameColumns     = []string{"name", "nome"}
)

type Change struct {
	File       string `json:"file"`
	Restaurant string `json:"restaurant"`
	From       string `json:"from"`
	To         string `json:"to"`
}

type Stats struct {
	FilesProcessed  int      `json:"files_processed"`
	CategoriesFixed int      `json:"categories_fixed"`
	FilesRemoved    int      `json:"files_removed"`
	RemovedFiles    []string `json:"removed_files"`
	Changes         []Change `json:"changes"`
}

type Repairer struct {
	dir    string
	logger *slog.Logger
}

func New(dataDir string, logger *slog.Logger) *Repairer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repairer{dir: dataDir, logger: logger}
}

// Run removes promotional product files, then rewrites every restaurants CSV
// with reclassified categories, leaving a .backup copy next to each one.
func (r *Repairer) Run() (*Stats, error) {
	stats := &Stats{}
	if err := r.removePromotionalProducts(stats); err != nil {
		return stats, err
	}
	if err := r.fixRestaurantCategories(stats); err != nil {
		return stats, err
	}
	r.logger.Info("category repair finished",
		"files_processed", stats.FilesProcessed,
		"categories_fixed", stats.CategoriesFixed,
		"files_removed", stats.FilesRemoved)
	return stats, nil
}

func (r *Repairer) removePromotionalProducts(stats *Stats) error {
	productsDir := filepath.Join(r.dir, export.ProductsDir)
	for _, tag := range promotionalFileTags {
		matches, err := filepath.Glob(filepath.Join(productsDir, export.ProductFilePrefix+tag+"_*"))
		if err != nil {
			return err
		}
		sort.Strings(matches)
		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			r.logger.Info("removed promotional product file", "file", filepath.Base(path))
			stats.FilesRemoved++
			stats.RemovedFiles = append(stats.RemovedFiles, filepath.Base(path))
		}
	}
	return nil
}

func (r *Repairer) fixRestaurantCategories(stats *Stats) error {
	files, err := filepath.Glob(filepath.Join(r.dir, export.RestaurantsDir, "*."+export.FormatCSV))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, path := range files {
		if err := copyFile(path, path+BackupSuffix); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
		changes, err := r.fixFile(path)
		if err != nil {
			return err
		}
		stats.FilesProcessed++
		stats.CategoriesFixed += len(changes)
		stats.Changes = append(stats.Changes, changes...)
	}
	return nil
}

func (r *Repairer) fixFile(path string) ([]Change, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	categoryIdx := columnIndex(header, categoryColumns)
	if categoryIdx < 0 {
		r.logger.Warn("restaurants file has no category column", "file", filepath.Base(path))
		return nil, nil
	}
	nameIdx := columnIndex(header, nameColumns)

	var changes []Change
	for _, record := range records {
		if categoryIdx >= len(record) {
			continue
		}
		name := ""
		if nameIdx >= 0 && nameIdx < len(record) {
			name = record[nameIdx]
		}
		original := record[categoryIdx]
		fixed := catalog.ReclassifyPromotionalTag(original, name)
		if fixed == original {
			continue
		}
		record[categoryIdx] = fixed
		changes = append(changes, Change{File: filepath.Base(path), Restaurant: name, From: original, To: fixed})
		r.logger.Debug("category fixed", "restaurant", name, "from", original, "to", fixed)
	}

	if err := writeCSV(path, header, records); err != nil {
		return nil, err
	}
	return changes, nil
}

func columnIndex(header []string, candidates []string) int {
	for _, c := range candidates {
		for i, h := range header {
			if h == c {
				return i
			}
		}
	}
	return -1
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if header != nil {
		if err := cw.Write(header); err != nil {
			f.Close()
			return err
		}
	}
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
