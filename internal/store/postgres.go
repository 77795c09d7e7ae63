package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const projectionColumns = `projection_id, client_id,
	attractiveness, availability, investment,
	undefined, success_percent, band, message, tone,
	return_factor, projected_return, net_gain,
	rule_strengths, created_at`

func (s *PostgresStore) SaveProjection(ctx context.Context, p *Projection) error {
	strengthsJSON, _ := json.Marshal(p.RuleStrengths)

	return s.pool.QueryRow(ctx, `
		INSERT INTO difusa_projections (client_id,
			attractiveness, availability, investment,
			undefined, success_percent, band, message, tone,
			return_factor, projected_return, net_gain, rule_strengths)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING projection_id, created_at`,
		p.ClientID,
		p.Attractiveness, p.Availability, p.Investment,
		p.Undefined, p.SuccessPercent, p.Band, p.Message, p.Tone,
		p.ReturnFactor, p.ProjectedReturn, p.NetGain, strengthsJSON,
	).Scan(&p.ID, &p.CreatedAt)
}

func (s *PostgresStore) GetProjection(ctx context.Context, id uuid.UUID) (*Projection, error) {
	p := &Projection{}
	var strengthsJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+projectionColumns+`
		FROM difusa_projections WHERE projection_id = $1`, id,
	).Scan(
		&p.ID, &p.ClientID,
		&p.Attractiveness, &p.Availability, &p.Investment,
		&p.Undefined, &p.SuccessPercent, &p.Band, &p.Message, &p.Tone,
		&p.ReturnFactor, &p.ProjectedReturn, &p.NetGain,
		&strengthsJSON, &p.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if strengthsJSON != nil {
		_ = json.Unmarshal(strengthsJSON, &p.RuleStrengths)
	}
	return p, nil
}

func (s *PostgresStore) ListProjections(ctx context.Context, filter ProjectionFilter) ([]*Projection, error) {
	query := `SELECT ` + projectionColumns + ` FROM difusa_projections WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Band != "" {
		n++
		query += fmt.Sprintf(" AND band = $%d", n)
		args = append(args, filter.Band)
	}
	if filter.ClientID != "" {
		n++
		query += fmt.Sprintf(" AND client_id = $%d", n)
		args = append(args, filter.ClientID)
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Projection
	for rows.Next() {
		p := &Projection{}
		var strengthsJSON []byte
		if err := rows.Scan(
			&p.ID, &p.ClientID,
			&p.Attractiveness, &p.Availability, &p.Investment,
			&p.Undefined, &p.SuccessPercent, &p.Band, &p.Message, &p.Tone,
			&p.ReturnFactor, &p.ProjectedReturn, &p.NetGain,
			&strengthsJSON, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if strengthsJSON != nil {
			_ = json.Unmarshal(strengthsJSON, &p.RuleStrengths)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*ProjectionStats, error) {
	st := &ProjectionStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE band = 'Low'),
			count(*) FILTER (WHERE band = 'Moderate'),
			count(*) FILTER (WHERE band = 'High'),
			count(*) FILTER (WHERE undefined),
			avg(success_percent)
		FROM difusa_projections`,
	).Scan(&st.Total, &st.LowCount, &st.ModerateCount, &st.HighCount,
		&st.UndefinedCount, &st.AvgSuccessPercent)
	if err != nil {
		return nil, err
	}
	return st, nil
}
