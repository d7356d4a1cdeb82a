package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meetspace/internal/domain"
)

type identityRepository struct {
	DB *sql.DB
}

func NewIdentityRepository(db *sql.DB) domain.IdentityRepository {
	return &identityRepository{DB: db}
}

func (r *identityRepository) Create(ctx context.Context, i *domain.Identity) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	query := `
		INSERT INTO api_keys (id, email, agent_name, key_hash, key_prefix, tier, rate_limit, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		i.ID, i.Email, i.AgentName, i.KeyHash, i.KeyPrefix, string(i.Tier), i.RateLimit, i.IsActive, i.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("identity %s already exists: %w", i.ID, err)
		}
		return err
	}
	return nil
}

// ListActiveByPrefix is served by the api_keys key_prefix index.
func (r *identityRepository) ListActiveByPrefix(ctx context.Context, prefix string) ([]*domain.Identity, error) {
	query := `
		SELECT id, email, agent_name, key_hash, key_prefix, tier, rate_limit, is_active, created_at, last_used_at
		FROM api_keys
		WHERE key_prefix = $1 AND is_active = true
	`
	rows, err := r.DB.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Identity
	for rows.Next() {
		i := &domain.Identity{}
		var tier string
		var lastUsed sql.NullTime
		if err := rows.Scan(
			&i.ID, &i.Email, &i.AgentName, &i.KeyHash, &i.KeyPrefix, &tier,
			&i.RateLimit, &i.IsActive, &i.CreatedAt, &lastUsed,
		); err != nil {
			return nil, err
		}
		i.Tier = domain.Tier(tier)
		if !i.Tier.Valid() {
			return nil, fmt.Errorf("identity %s has unknown tier %q", i.ID, tier)
		}
		if lastUsed.Valid {
			i.LastUsedAt = &lastUsed.Time
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *identityRepository) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
