package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/church-management/internal/apperrors"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// CreatePosition вставляет новую должность церкви и возвращает её ID.
func (s *Storage) CreatePosition(ctx context.Context, churchID, name string, isDefault bool) (string, error) {
	const op = "storage.CreatePosition"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO church_positions (church_id, name, is_default)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, churchID, name, isDefault).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListPositionsByChurch возвращает должности церкви.
func (s *Storage) ListPositionsByChurch(ctx context.Context, churchID string) ([]*models.ChurchPosition, error) {
	const op = "storage.ListPositionsByChurch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, church_id, name, is_default
			  FROM church_positions
			  WHERE church_id = $1
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, churchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ChurchPosition
	for rows.Next() {
		var item models.ChurchPosition
		if err := rows.Scan(&item.ID, &item.ChurchID, &item.Name, &item.IsDefault); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeletePositionGuarded удаляет должность после проверок, выполняемых
// в одной транзакции с блокировкой строки должности:
//  1. должность существует, иначе apperrors.ErrNotFound;
//  2. должность не дефолтная, иначе apperrors.ErrInvariantViolation;
//  3. на должность не ссылается ни один участник, иначе apperrors.ErrInvariantViolation.
//
// Блокировка FOR UPDATE закрывает гонку check-then-act между конкурентными
// удалениями и назначениями должности.
func (s *Storage) DeletePositionGuarded(ctx context.Context, id string) error {
	const op = "storage.DeletePositionGuarded"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var isDefault bool
	row := tx.QueryRowContext(ctx,
		`SELECT is_default FROM church_positions WHERE id = $1 FOR UPDATE`, id)
	if err := row.Scan(&isDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if isDefault {
		return fmt.Errorf("%s: default position cannot be deleted: %w", op, apperrors.ErrInvariantViolation)
	}

	var refs int
	row = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE position_id = $1`, id)
	if err := row.Scan(&refs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if refs > 0 {
		return fmt.Errorf("%s: position is referenced by members: %w", op, apperrors.ErrInvariantViolation)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM church_positions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SeedDefaultPositions создает отсутствующие дефолтные должности церкви.
// Сравнение имён регистронезависимое, повторный вызов ничего не дублирует.
// Возвращает число созданных должностей. Чтение и вставка выполняются
// в одной транзакции.
func (s *Storage) SeedDefaultPositions(ctx context.Context, churchID string, names []string) (int, error) {
	const op = "storage.SeedDefaultPositions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows, err := tx.QueryContext(ctx,
		`SELECT LOWER(name) FROM church_positions WHERE church_id = $1 FOR UPDATE`, churchID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	existing := map[string]struct{}{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	_ = rows.Close()

	created := 0
	for _, name := range names {
		if _, ok := existing[strings.ToLower(name)]; ok {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO church_positions (church_id, name, is_default) VALUES ($1, $2, true)`,
			churchID, name); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
