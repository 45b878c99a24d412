package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// translateError maps no-row and constraint failures onto domain sentinels.
// notFound is returned for pgx.ErrNoRows and foreign key violations.
func translateError(err error, op string, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", notFound, op)
	}
	switch pgErrorCode(err) {
	case PgErrorCodeForeignKeyViolation:
		return fmt.Errorf("%w: %s", notFound, op)
	case PgErrorCodeUniqueViolation, PgErrorCodeCheckViolation:
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// parseAmount reads a NUMERIC column that was selected as text
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", ErrMsgFailedToParseAmount, s, err)
	}
	return d, nil
}
