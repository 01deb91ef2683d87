package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// classify maps driver errors onto the ledger error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", models.ErrDuplicateID, err)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %v", models.ErrInsufficientFunds, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", models.ErrDuplicateID, err)
		case pgCheckViolation:
			return fmt.Errorf("%w: %v", models.ErrInsufficientFunds, err)
		}
	}

	return fmt.Errorf("%w: %v", models.ErrStorageFailure, err)
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
