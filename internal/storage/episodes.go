package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Episode end reasons.
const (
	EndTerminated = "terminated" // Game over
	EndTruncated  = "truncated"  // Step limit reached
	EndDisconnect = "disconnect" // Agent went away mid-episode
	EndAbandoned  = "abandoned"  // Agent reset mid-episode
)

// Episode sources.
const (
	SourceSim   = "sim"   // Built-in autopilot run
	SourceAgent = "agent" // External agent over websocket
)

// Episode represents one finished agent episode.
type Episode struct {
	ID          int64
	EpisodeID   string
	Source      string
	Policy      string // Empty for external agents
	Reward      string
	Seed        int64
	Steps       int
	Score       int
	Level       int
	TotalReward float64
	EndReason   string
	CreatedAt   time.Time
}

// SaveEpisode records a finished episode.
// Returns the ID of the inserted record.
func (s *Store) SaveEpisode(e Episode) (int64, error) {
	if e.Level < 1 {
		e.Level = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO episodes
		 (episode_id, source, policy, reward, seed, steps, score, level, total_reward, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EpisodeID,
		e.Source,
		e.Policy,
		e.Reward,
		e.Seed,
		e.Steps,
		e.Score,
		e.Level,
		e.TotalReward,
		e.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const episodeColumns = `id, episode_id, source, policy, reward, seed, steps,
		        score, level, total_reward, end_reason, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (Episode, error) {
	var e Episode
	var createdAt any
	err := row.Scan(
		&e.ID,
		&e.EpisodeID,
		&e.Source,
		&e.Policy,
		&e.Reward,
		&e.Seed,
		&e.Steps,
		&e.Score,
		&e.Level,
		&e.TotalReward,
		&e.EndReason,
		&createdAt,
	)
	if err != nil {
		return e, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// EpisodeByID retrieves an episode by its episode ID.
// Returns nil without error if it does not exist.
func (s *Store) EpisodeByID(episodeID string) (*Episode, error) {
	row := s.db.QueryRow(
		`SELECT `+episodeColumns+`
		 FROM episodes
		 WHERE episode_id = ?`,
		episodeID,
	)

	e, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episode: %w", err)
	}
	return &e, nil
}

// RecentEpisodes retrieves the most recent episodes, newest first.
func (s *Store) RecentEpisodes(limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+episodeColumns+`
		 FROM episodes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var results []Episode
	for rows.Next() {
		e, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// EpisodeStats contains aggregated statistics for one controller.
type EpisodeStats struct {
	Source     string
	Policy     string
	Episodes   int
	BestScore  int
	AvgScore   float64
	AvgReward  float64
	AvgSteps   float64
	LastPlayed time.Time
}

// AllEpisodeStats groups episodes by source and policy.
func (s *Store) AllEpisodeStats() ([]EpisodeStats, error) {
	rows, err := s.db.Query(
		`SELECT source, policy, COUNT(*), MAX(score), AVG(score), AVG(total_reward), AVG(steps), MAX(created_at)
		 FROM episodes
		 GROUP BY source, policy
		 ORDER BY source, policy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get episode stats: %w", err)
	}
	defer rows.Close()

	var stats []EpisodeStats
	for rows.Next() {
		var st EpisodeStats
		var lastPlayed any
		if err := rows.Scan(&st.Source, &st.Policy, &st.Episodes, &st.BestScore, &st.AvgScore, &st.AvgReward, &st.AvgSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
