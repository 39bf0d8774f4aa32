package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelinv/infras/otel"
	"hotelinv/infras/postgres"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/shared/constant"
	gDto "hotelinv/shared/dto"
	"hotelinv/shared/logger"
	gRepo "hotelinv/shared/repository"
)

// Sheet persists whole ledgers under a sheet name.
type Sheet interface {
	Load(ctx context.Context, sheet string) ([]model.SheetRow, error)
	Save(ctx context.Context, sheet string, rows []model.SheetRow) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SheetRow]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Sheet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SheetRow](model.EntityName, model.TableName, model.FieldPosition, db, otel),
		db:         db,
		otel:       otel,
	}
}

func sheetFilter(sheet string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSheet,
				Operator: gDto.FilterOperatorEq,
				Value:    sheet,
				Table:    model.TableName,
			},
		},
	}
}

func (r *repositoryImpl) Load(ctx context.Context, sheet string) ([]model.SheetRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sheet.Load")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, sheetFilter(sheet)) //nolint:wrapcheck
}

// Save overwrites the sheet with rows in a single transaction.
func (r *repositoryImpl) Save(ctx context.Context, sheet string, rows []model.SheetRow) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sheet.Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if err = r.DeleteTx(ctx, tx, sheetFilter(sheet)); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = r.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit sheet %q: %w", sheet, err)
	}

	return nil
}
