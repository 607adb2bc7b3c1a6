// Package storage реализует хранилище данных на основе PostgreSQL
// для платформы управления церквями. Предоставляет методы создания,
// чтения и удаления записей по всем сущностям: пользователи, участники,
// церкви, филиалы, разрешения, должности, транзакции, события,
// пожертвования, девоционалы и тарифы.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет, что миграции применены и база готова.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'branches'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table branches missing or query error: %w", err)
	}
	return nil
}
