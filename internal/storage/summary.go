package storage

import (
	"fmt"
	"time"
)

// Summary aggregates the history of one mode.
type Summary struct {
	Mode          string
	Played        int
	Won           int
	WinRate       int // Percent, rounded down
	CurrentStreak int // Consecutive wins ending with the latest round
	MaxStreak     int
	// Distribution[i] counts wins that took i+1 rows.
	Distribution []int
	LastPlayed   time.Time
}

// Summary computes statistics for mode. maxRows sizes the guess
// distribution; wins that used more rows are counted in the last bucket.
func (s *Store) Summary(mode string, maxRows int) (*Summary, error) {
	if maxRows <= 0 {
		maxRows = 6
	}
	sum := &Summary{Mode: mode, Distribution: make([]int, maxRows)}

	rows, err := s.db.Query(
		`SELECT won, attempts, created_at FROM results WHERE mode = ? ORDER BY id`,
		mode,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var won bool
		var attempts int
		var createdAt any
		if err := rows.Scan(&won, &attempts, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		sum.Played++
		sum.LastPlayed = parseTime(createdAt)
		if !won {
			streak = 0
			continue
		}

		sum.Won++
		streak++
		if streak > sum.MaxStreak {
			sum.MaxStreak = streak
		}
		bucket := attempts - 1
		if bucket < 0 {
			bucket = 0
		}
		if bucket >= maxRows {
			bucket = maxRows - 1
		}
		sum.Distribution[bucket]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	sum.CurrentStreak = streak
	if sum.Played > 0 {
		sum.WinRate = sum.Won * 100 / sum.Played
	}
	return sum, nil
}
