package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	Preset      string
	Played      int
	Won         int
	BestSeconds int // 0 when no game was won
	AvgWin      float64
	LastPlayed  time.Time
}

// WinRate returns the fraction of games won, or 0 when none were played.
func (p PresetStats) WinRate() float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Won) / float64(p.Played)
}

const statsColumns = `preset, COUNT(*),
	COALESCE(SUM(won), 0),
	COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
	COALESCE(AVG(CASE WHEN won = 1 THEN seconds END), 0),
	MAX(created_at)`

// Stats retrieves aggregated statistics for one preset.
// A preset with no recorded games yields zero counters.
func (s *Store) Stats(preset string) (*PresetStats, error) {
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE preset = ? GROUP BY preset`,
		preset,
	)

	stats, err := scanStats(row)
	if err == sql.ErrNoRows {
		return &PresetStats{Preset: preset}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM results GROUP BY preset`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		ps, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[ps.Preset] = ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*PresetStats, error) {
	var ps PresetStats
	var lastPlayed any
	if err := row.Scan(&ps.Preset, &ps.Played, &ps.Won, &ps.BestSeconds, &ps.AvgWin, &lastPlayed); err != nil {
		return nil, err
	}
	ps.LastPlayed = parseTime(lastPlayed)
	return &ps, nil
}
