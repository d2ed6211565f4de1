package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

// fileStats keeps the counters in a JSON file, used when no redis is around (terminal mode).
type fileStats struct {
	mu   sync.Mutex
	path string
}

func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Record(_ context.Context, outcome entity.Outcome) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats, err := that.read()
	if err != nil {
		return err
	}

	stats.Apply(outcome)

	return that.write(stats)
}

func (that *fileStats) Get(_ context.Context) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.read()
}

func (that *fileStats) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.write(&entity.Stats{})
}

func (that *fileStats) read() (*entity.Stats, error) {
	stats := &entity.Stats{}

	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return stats, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	if err = json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return stats, nil
}

// write - replaces the file through a rename so a crash never leaves half a file.
func (that *fileStats) write(stats *entity.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp := that.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	if err = os.Rename(tmp, that.path); err != nil {
		return fmt.Errorf("failed to replace stats file: %w", err)
	}

	return nil
}
