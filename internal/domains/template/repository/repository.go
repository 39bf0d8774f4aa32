package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelinv/infras/otel"
	"hotelinv/infras/postgres"
	"hotelinv/internal/domains/template/model"
	"hotelinv/shared/constant"
	gDto "hotelinv/shared/dto"
	"hotelinv/shared/logger"
	gRepo "hotelinv/shared/repository"
)

type Template interface {
	Load(ctx context.Context) ([]model.Row, error)
	Replace(ctx context.Context, rows []model.Row) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Row]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Template {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Row](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Load(ctx context.Context) ([]model.Row, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".template.Load")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

// Replace swaps the stored set for rows in one transaction.
func (r *repositoryImpl) Replace(ctx context.Context, rows []model.Row) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".template.Replace")
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

	all := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterIsNotNull, Table: model.TableName},
		},
	}

	if err = r.DeleteTx(ctx, tx, all); err != nil {
		return err
	}

	if len(rows) > 0 {
		if err = r.InsertBulkTx(ctx, tx, rows); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit templates: %w", err)
	}

	return nil
}
