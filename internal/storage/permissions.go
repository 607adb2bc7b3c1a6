package storage

import (
	"context"
	"fmt"
)

// ListDistinctPermissionTypes возвращает глобальный каталог типов
// разрешений — все различные type, существующие в системе.
func (s *Storage) ListDistinctPermissionTypes(ctx context.Context) ([]string, error) {
	const op = "storage.ListDistinctPermissionTypes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT DISTINCT type FROM permissions ORDER BY type`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []string{}
	for rows.Next() {
		var permType string
		if err := rows.Scan(&permType); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, permType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// InsertPermissions выдает участнику список разрешений, молча пропуская
// уже существующие пары (member_id, type). Возвращает число фактически
// вставленных строк.
func (s *Storage) InsertPermissions(ctx context.Context, memberID string, types []string) (int, error) {
	const op = "storage.InsertPermissions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO permissions (member_id, type)
			  SELECT $1, unnest($2::text[])
			  ON CONFLICT (member_id, type) DO NOTHING`
	result, err := s.DB.ExecContext(ctx, query, memberID, types)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
