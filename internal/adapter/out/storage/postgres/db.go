package postgres

import (
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

// DB is the query surface shared by pgxpool.Pool, pgx.Conn and pgx.Tx.
// Matching trmpgx.Tr lets the transaction manager substitute an open
// transaction from the context.
type DB = trmpgx.Tr
