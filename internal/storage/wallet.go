package storage

import (
	"fmt"
	"time"
)

// LedgerEntry is one change to the wallet balance.
type LedgerEntry struct {
	ID        int64
	GameID    string
	Amount    int
	Reason    string
	CreatedAt time.Time
}

// Balance returns the current wallet balance.
func (s *Store) Balance() (int, error) {
	var balance int
	if err := s.db.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return balance, nil
}

// Credit adds amount coins to the wallet and records a ledger row in the
// same transaction. A zero amount is recorded but leaves the balance
// unchanged. Returns the new balance.
func (s *Store) Credit(gameID string, amount int, reason string) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("storage: credit amount must be >= 0, got %d", amount)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	var balance int
	if err := tx.QueryRow("SELECT balance FROM wallet WHERE id = 1").Scan(&balance); err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}

	balance += amount

	if _, err := tx.Exec("UPDATE wallet SET balance = ? WHERE id = 1", balance); err != nil {
		return 0, fmt.Errorf("storage: cannot update balance: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO coin_ledger (game_id, amount, reason) VALUES (?, ?, ?)",
		gameID, amount, reason,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot record ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit wallet change: %w", err)
	}
	return balance, nil
}

// Ledger returns the most recent wallet changes, newest first.
func (s *Store) Ledger(limit int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, amount, reason, created_at
		 FROM coin_ledger
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Amount, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan ledger row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
