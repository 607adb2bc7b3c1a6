// Package finance содержит бизнес-логику финансовых записей филиала:
// список транзакций, агрегированную сводку и создание записей.
package finance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Repository определяет методы хранилища для транзакций.
type Repository interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (int, error)
	// ListTransactionsByBranch возвращает транзакции филиала, новые первыми.
	ListTransactionsByBranch(ctx context.Context, branchID string) ([]*models.Transaction, error)
}

// Cache описывает методы кеширования финансовой сводки.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует финансовые операции филиала.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func summaryCacheKey(branchID string) string {
	return fmt.Sprintf("finance:summary:%s", branchID)
}

// List возвращает транзакции филиала, новые первыми.
func (s *Service) List(ctx context.Context, branchID string) ([]*models.Transaction, error) {
	return s.repo.ListTransactionsByBranch(ctx, branchID)
}

// Summary возвращает сводку по филиалу: сумму приходов, сумму расходов
// и сальдо (приходы минус расходы) вместе со списком транзакций.
// Сводка кешируется и инвалидируется при создании транзакции.
func (s *Service) Summary(ctx context.Context, branchID string) (*models.FinanceSummary, error) {
	cacheKey := summaryCacheKey(branchID)
	var cached models.FinanceSummary
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read finance summary from cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	transactions, err := s.repo.ListTransactionsByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	summary := &models.FinanceSummary{Transactions: transactions}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionEntry:
			summary.Entries += tx.Amount
		case models.TransactionExit:
			summary.Exits += tx.Amount
		}
	}
	summary.Total = summary.Entries - summary.Exits

	if err := s.cache.Set(cacheKey, summary, 10*time.Minute); err != nil {
		s.log.Warn("failed to cache finance summary", sl.Err(err))
	}
	return summary, nil
}

// CreateTransaction создает финансовую запись под указанным филиалом.
// Сумма строго положительная, тип — ENTRY или EXIT (проверяется и схемой
// запроса, и здесь — сервис не доверяет вызывающему слою).
func (s *Service) CreateTransaction(ctx context.Context, branchID string, req models.CreateTransactionRequest) (*models.Transaction, error) {
	const op = "finance.CreateTransaction"

	if req.Amount <= 0 {
		return nil, fmt.Errorf("%s: amount must be positive", op)
	}
	if req.Type != models.TransactionEntry && req.Type != models.TransactionExit {
		return nil, fmt.Errorf("%s: unknown transaction type %q", op, req.Type)
	}

	tx := models.Transaction{
		BranchID: branchID,
		Title:    req.Title,
		Amount:   req.Amount,
		Type:     req.Type,
	}
	if req.Category != "" {
		tx.Category = &req.Category
	}

	id, err := s.repo.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tx.ID = id
	tx.CreatedAt = time.Now()

	if err := s.cache.Invalidate(summaryCacheKey(branchID)); err != nil {
		s.log.Warn("failed to invalidate finance summary cache", sl.Err(err))
	}

	s.log.Info("created transaction",
		slog.Int("id", id),
		slog.String("branch_id", branchID),
		slog.String("type", tx.Type))
	return &tx, nil
}
