package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

// CardRepository handles the cards table.
type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Replace removes any card of the owner and stores c in its place. Callers
// run it inside an atomic unit.
func (r *CardRepository) Replace(ctx context.Context, c models.Card) error {
	const deleteQuery = `DELETE FROM cards WHERE owner_id = ?`
	const insertQuery = `INSERT INTO cards (code, hash, owner_id) VALUES (?, ?, ?)`
	ex := executor(ctx, r.db)

	res, err := ex.ExecContext(ctx, ex.Rebind(deleteQuery), c.OwnerID)
	logQuery(deleteQuery, []any{c.OwnerID}, rowsAffected(res), err)
	if err != nil {
		return classify(err)
	}

	_, err = ex.ExecContext(ctx, ex.Rebind(insertQuery), c.Code, c.Hash, c.OwnerID)
	logQuery(insertQuery, []any{c.OwnerID}, nil, err)

	return classify(err)
}

// GetByOwner returns the active card of ownerID or ErrCardNotFound.
func (r *CardRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Card, error) {
	return r.getBy(ctx, "owner_id", ownerID)
}

// GetByCode returns the card with the given code or ErrCardNotFound.
func (r *CardRepository) GetByCode(ctx context.Context, code string) (*models.Card, error) {
	return r.getBy(ctx, "code", code)
}

// GetByHash returns the card whose code hashes to hash or ErrCardNotFound.
func (r *CardRepository) GetByHash(ctx context.Context, hash string) (*models.Card, error) {
	return r.getBy(ctx, "hash", hash)
}

func (r *CardRepository) getBy(ctx context.Context, column, value string) (*models.Card, error) {
	query := `SELECT code, hash, owner_id FROM cards WHERE ` + column + ` = ?`
	ex := executor(ctx, r.db)

	var c models.Card
	err := sqlx.GetContext(ctx, ex, &c, ex.Rebind(query), value)
	logQuery(query, []any{column}, c.OwnerID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCardNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

// Exists reports whether code belongs to any card.
func (r *CardRepository) Exists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT COUNT(*) FROM cards WHERE code = ?`
	ex := executor(ctx, r.db)

	var n int
	err := sqlx.GetContext(ctx, ex, &n, ex.Rebind(query), code)
	logQuery(query, nil, n, err)

	return n > 0, classify(err)
}
