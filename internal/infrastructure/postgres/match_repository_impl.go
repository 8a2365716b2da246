package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
)

type MatchRepository struct {
	db DBTX
}

func NewMatchRepository(db DBTX) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `id, candidate_id, offer_id, score, status, created_at, updated_at`

func matchTargets(m *entity.Match) []any {
	return []any{&m.ID, &m.CandidateID, &m.OfferID, &m.Score, &m.Status, &m.CreatedAt, &m.UpdatedAt}
}

func (r *MatchRepository) Upsert(ctx context.Context, m *entity.Match) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO matches (candidate_id, offer_id, score, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (candidate_id, offer_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = now()
		RETURNING `+matchColumns+`
	`, m.CandidateID, m.OfferID, m.Score).Scan(matchTargets(m)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	var m entity.Match
	err := r.db.QueryRow(ctx, `
		SELECT `+matchColumns+`
		FROM matches
		WHERE id = $1
	`, id).Scan(matchTargets(&m)...)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &m, nil
}

func (r *MatchRepository) ListByCandidate(ctx context.Context, candidateID string) ([]entity.Match, error) {
	return r.list(ctx, `
		SELECT `+matchColumns+`
		FROM matches
		WHERE candidate_id = $1
		ORDER BY created_at DESC, id
	`, candidateID)
}

// ListByOffer orders by score so the strongest applicants come first.
func (r *MatchRepository) ListByOffer(ctx context.Context, offerID string) ([]entity.Match, error) {
	return r.list(ctx, `
		SELECT `+matchColumns+`
		FROM matches
		WHERE offer_id = $1
		ORDER BY score DESC, created_at, id
	`, offerID)
}

func (r *MatchRepository) list(ctx context.Context, sql string, arg string) ([]entity.Match, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return []entity.Match{}, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectMatches(rows)
}

func collectMatches(rows pgx.Rows) ([]entity.Match, error) {
	defer rows.Close()
	out := make([]entity.Match, 0)
	for rows.Next() {
		var m entity.Match
		if err := rows.Scan(matchTargets(&m)...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id string, status entity.MatchStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE matches
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, string(status))
	if err != nil {
		if errors.Is(lookupErr(err), repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MatchRepository = (*MatchRepository)(nil)
