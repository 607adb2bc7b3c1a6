package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreateTransaction вставляет финансовую запись и возвращает её ID.
func (s *Storage) CreateTransaction(ctx context.Context, tx models.Transaction) (int, error) {
	const op = "storage.CreateTransaction"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO transactions (branch_id, title, amount, type, category)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		tx.BranchID, tx.Title, tx.Amount, tx.Type, tx.Category).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTransactionsByBranch возвращает транзакции филиала, новые первыми.
func (s *Storage) ListTransactionsByBranch(ctx context.Context, branchID string) ([]*models.Transaction, error) {
	const op = "storage.ListTransactionsByBranch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, branch_id, title, amount, type, category, created_at
			  FROM transactions
			  WHERE branch_id = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Transaction
	for rows.Next() {
		var item models.Transaction
		var category sql.NullString
		if err := rows.Scan(&item.ID, &item.BranchID, &item.Title, &item.Amount,
			&item.Type, &category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if category.Valid {
			item.Category = &category.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
