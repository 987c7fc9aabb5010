package income

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/income"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type IncomeServiceImpl struct {
	tx database.TxRunner
	income.CommissionRepository
	income.IncomeRepository
	recorder audit.Recorder
}

func NewIncomeService(
	tx database.TxRunner,
	commissionRepo income.CommissionRepository,
	incomeRepo income.IncomeRepository,
	recorder audit.Recorder,
) income.IncomeService {
	return &IncomeServiceImpl{
		tx:                   tx,
		CommissionRepository: commissionRepo,
		IncomeRepository:     incomeRepo,
		recorder:             recorder,
	}
}

// DistributeProjectIncome implements income.IncomeService. One ledger entry
// per configured rule, all written in one transaction. Deliberately not
// idempotent: a repeat invocation for the same (project, month) appends a
// second batch; whether that needs deduplication is a product decision.
func (s *IncomeServiceImpl) DistributeProjectIncome(ctx context.Context, req income.DistributeIncomeRequest) (income.DistributeIncomeResponse, error) {
	if err := req.Validate(); err != nil {
		return income.DistributeIncomeResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return income.DistributeIncomeResponse{}, err
	}
	if !ident.Role.CanManage() {
		return income.DistributeIncomeResponse{}, staff.ErrManagerAccessRequired
	}

	totalAmount, err := req.Amount()
	if err != nil {
		return income.DistributeIncomeResponse{}, fmt.Errorf("failed to parse total amount: %w", err)
	}

	var written []income.IncomeRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rules, err := s.CommissionRepository.ListByProject(ctx, req.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to list commission rules: %w", err)
		}
		if len(rules) == 0 {
			return income.ErrNoCommissionConfigured
		}

		for _, rule := range rules {
			record, err := s.IncomeRepository.Create(ctx, income.IncomeRecord{
				UserID:      rule.UserID,
				ProjectID:   req.ProjectID,
				IncomeType:  income.IncomeTypeCommission,
				Amount:      rule.CommissionAmount(totalAmount),
				Month:       req.Month,
				Description: req.Description,
			})
			if err != nil {
				return err
			}
			written = append(written, record)
		}
		return nil
	})
	if err != nil {
		return income.DistributeIncomeResponse{}, err
	}

	s.recorder.Record(ctx, ident.StaffID, "income.distribute",
		fmt.Sprintf("distributed %s for project %s over %d rules (month %s)",
			totalAmount.StringFixed(2), req.ProjectID, len(written), req.Month))

	responses := make([]income.IncomeRecordResponse, 0, len(written))
	for _, record := range written {
		responses = append(responses, mapIncomeToResponse(record))
	}

	return income.DistributeIncomeResponse{
		ProjectID:      req.ProjectID,
		Month:          req.Month,
		TotalAmount:    totalAmount.StringFixed(2),
		RecordsWritten: len(written),
		Records:        responses,
	}, nil
}

// GetMyIncome implements income.IncomeService.
func (s *IncomeServiceImpl) GetMyIncome(ctx context.Context, filter income.MyIncomeFilter) (income.ListIncomeResponse, error) {
	if err := filter.Validate(); err != nil {
		return income.ListIncomeResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return income.ListIncomeResponse{}, err
	}

	records, err := s.IncomeRepository.ListByUserAndMonth(ctx, ident.StaffID, filter.Month)
	if err != nil {
		return income.ListIncomeResponse{}, fmt.Errorf("failed to list income records: %w", err)
	}

	total := decimal.Zero
	responses := make([]income.IncomeRecordResponse, 0, len(records))
	for _, record := range records {
		total = total.Add(record.Amount)
		responses = append(responses, mapIncomeToResponse(record))
	}

	return income.ListIncomeResponse{
		Month:       filter.Month,
		TotalAmount: total.StringFixed(2),
		Records:     responses,
	}, nil
}

func mapIncomeToResponse(rec income.IncomeRecord) income.IncomeRecordResponse {
	return income.IncomeRecordResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		ProjectID:   rec.ProjectID,
		IncomeType:  string(rec.IncomeType),
		Amount:      rec.Amount.StringFixed(2),
		Month:       rec.Month,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
