package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
)

// classifyError maps pgx failures onto the domain error taxonomy.
// Server-reported statement errors become *domain.QueryError; anything that
// prevented the statement from reaching the server becomes domain.ErrConnection.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if isConnectionClass(pgErr.Code) {
			return fmt.Errorf("%w: %w", domain.ErrConnection, err)
		}
		return &domain.QueryError{Code: pgErr.Code, Err: err}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		pgconn.SafeToRetry(err):
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	return &domain.QueryError{Err: err}
}

// isConnectionClass reports SQLSTATE classes where the server could not take
// the statement at all (08, 53, 57)
func isConnectionClass(code string) bool {
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsInsufficientResources(code) ||
		pgerrcode.IsOperatorIntervention(code)
}
