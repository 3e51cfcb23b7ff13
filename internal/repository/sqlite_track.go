package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
)

// SQLiteTrackRepo implements TrackRepo using a SQLite database. A pair
// option stores both members in one row (course_a, course_b); a single
// option leaves course_b NULL.
type SQLiteTrackRepo struct {
	db db.DBTX
}

// NewSQLiteTrackRepo creates a new SQLiteTrackRepo.
func NewSQLiteTrackRepo(conn db.DBTX) *SQLiteTrackRepo {
	return &SQLiteTrackRepo{db: conn}
}

func (r *SQLiteTrackRepo) ReplaceAll(ctx context.Context, tracks []domain.Track) error {
	// Group and option rows cascade from tracks.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tracks`); err != nil {
		return fmt.Errorf("clearing tracks: %w", err)
	}

	for _, t := range tracks {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO tracks (id, name) VALUES (?, ?)`, t.ID, t.Name); err != nil {
			return fmt.Errorf("inserting track %s: %w", t.ID, err)
		}
		for gi, g := range t.Groups {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO track_groups (track_id, group_key, kind, need, min_grade, order_index) VALUES (?, ?, ?, ?, ?, ?)`,
				t.ID, g.Key, string(g.Kind), g.Need, string(g.MinGrade), gi,
			)
			if err != nil {
				return fmt.Errorf("inserting group %s of track %s: %w", g.Key, t.ID, err)
			}
			for oi, opt := range g.Options {
				members := opt.Members()
				var courseB any
				if opt.IsPair() {
					courseB = members[1]
				}
				_, err := r.db.ExecContext(ctx,
					`INSERT INTO track_group_options (track_id, group_key, order_index, course_a, course_b) VALUES (?, ?, ?, ?, ?)`,
					t.ID, g.Key, oi, members[0], courseB,
				)
				if err != nil {
					return fmt.Errorf("inserting option %s of group %s: %w", opt.Key(), g.Key, err)
				}
			}
		}
	}
	return nil
}

func (r *SQLiteTrackRepo) List(ctx context.Context) ([]domain.Track, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tracks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.Track
	for rows.Next() {
		var t domain.Track
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracks: %w", err)
	}

	for i := range tracks {
		groups, err := r.loadGroups(ctx, tracks[i].ID)
		if err != nil {
			return nil, err
		}
		tracks[i].Groups = groups
	}
	return tracks, nil
}

func (r *SQLiteTrackRepo) GetByID(ctx context.Context, id string) (*domain.Track, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM tracks WHERE id = ?`, id)

	var t domain.Track
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("track %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning track: %w", err)
	}

	groups, err := r.loadGroups(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Groups = groups
	return &t, nil
}

// loadGroups loads a track's requirement groups with their options in
// declared order.
func (r *SQLiteTrackRepo) loadGroups(ctx context.Context, trackID string) ([]domain.RequirementGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_key, kind, need, min_grade FROM track_groups WHERE track_id = ? ORDER BY order_index`, trackID)
	if err != nil {
		return nil, fmt.Errorf("listing groups for track %s: %w", trackID, err)
	}
	defer rows.Close()

	var groups []domain.RequirementGroup
	for rows.Next() {
		var g domain.RequirementGroup
		var kind, minGrade string
		if err := rows.Scan(&g.Key, &kind, &g.Need, &minGrade); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		g.Kind = domain.GroupKind(kind)
		g.MinGrade = domain.Grade(minGrade)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}

	for i := range groups {
		opts, err := r.loadOptions(ctx, trackID, groups[i].Key)
		if err != nil {
			return nil, err
		}
		groups[i].Options = opts
	}
	return groups, nil
}

func (r *SQLiteTrackRepo) loadOptions(ctx context.Context, trackID, groupKey string) ([]domain.RequirementOption, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_a, course_b FROM track_group_options WHERE track_id = ? AND group_key = ? ORDER BY order_index`,
		trackID, groupKey)
	if err != nil {
		return nil, fmt.Errorf("listing options for group %s: %w", groupKey, err)
	}
	defer rows.Close()

	var opts []domain.RequirementOption
	for rows.Next() {
		var courseA string
		var courseB sql.NullString
		if err := rows.Scan(&courseA, &courseB); err != nil {
			return nil, fmt.Errorf("scanning option: %w", err)
		}
		if courseB.Valid {
			opts = append(opts, domain.Pair(courseA, courseB.String))
		} else {
			opts = append(opts, domain.Single(courseA))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating options: %w", err)
	}
	return opts, nil
}
