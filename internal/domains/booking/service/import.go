package service

import (
	"context"
	"errors"
	"fmt"

	"hotelinv/internal/domains/booking/ingest"
	"hotelinv/internal/domains/booking/merge"
	"hotelinv/internal/domains/booking/model"
	"hotelinv/internal/domains/booking/model/dto"
	"hotelinv/internal/domains/booking/source"
	"hotelinv/internal/domains/session"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) Import(ctx context.Context, mode, fileName string, data []byte) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Import")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = checkMode(mode); err != nil {
		return res, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	src, rows, err := source.Parse(fileName, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to parse booking file")

		return res, failure.BadRequestFromString(fmt.Sprintf("cannot read %s: %v", fileName, err)) // nolint:wrapcheck
	}

	return s.apply(ctx, sess, mode, src, rows)
}

func (s *serviceImpl) LoadDemo(ctx context.Context, mode string) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.LoadDemo")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if mode == constant.Empty {
		mode = dto.ImportModeReplace
	}
	if err = checkMode(mode); err != nil {
		return res, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	return s.apply(ctx, sess, mode, ingest.SourceSpreadsheet, source.Demo())
}

func (s *serviceImpl) LoadSheet(ctx context.Context, req dto.SheetRequest) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.LoadSheet")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	sheet := s.sheetName(req.Sheet)

	stored, err := s.repo.Load(ctx, sheet)
	if err != nil {
		log.Error().Err(err).Str("sheet", sheet).Msg("failed to load sheet")

		return res, fmt.Errorf("failed to load sheet %s: %w", sheet, err)
	}

	if len(stored) == 0 {
		return res, failure.NotFound("sheet " + sheet) // nolint:wrapcheck
	}

	return s.apply(ctx, sess, dto.ImportModeReplace, ingest.SourceSheet, ingest.FromSheet(stored))
}

func (s *serviceImpl) SaveSheet(ctx context.Context, req dto.SheetRequest) (res dto.SaveSheetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SaveSheet")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sess, err := s.session(ctx)
	if err != nil {
		return res, err
	}

	bookings := sess.Ledger.All()
	if len(bookings) == 0 {
		return res, failure.BadRequestFromString("no bookings to save") // nolint:wrapcheck
	}

	sheet := s.sheetName(req.Sheet)
	savedAt := timezone.Now()

	rows := make([]model.SheetRow, 0, len(bookings))
	for i, b := range bookings {
		rows = append(rows, model.ToSheetRow(sheet, i, b, savedAt))
	}

	if err = s.repo.Save(ctx, sheet, rows); err != nil {
		log.Error().Err(err).Str("sheet", sheet).Msg("failed to save sheet")

		return res, fmt.Errorf("failed to save sheet %s: %w", sheet, err)
	}

	log.Info().Str("session_id", sess.ID).Str("sheet", sheet).Int("count", len(rows)).Msg("sheet saved")

	res.Sheet = sheet
	res.Saved = len(rows)

	return res, nil
}

func (s *serviceImpl) sheetName(name string) string {
	if name != constant.Empty {
		return name
	}
	return s.cfg.Hotel.DefaultSheet
}

func checkMode(mode string) error {
	if mode != dto.ImportModeReplace && mode != dto.ImportModeMerge {
		return failure.BadRequestFromString(fmt.Sprintf("unknown import mode %q", mode)) // nolint:wrapcheck
	}
	return nil
}

// apply normalizes rows and folds them into the session ledger.
func (s *serviceImpl) apply(ctx context.Context, sess *session.Session, mode string, src ingest.Source, rows []ingest.Row) (res dto.ImportResponse, err error) {
	result, err := ingest.Run(src, rows)
	if err != nil {
		if errors.Is(err, ingest.ErrEmptyBatch) {
			return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to normalize bookings: %w", err)
	}

	res.Mode = mode
	res.Loaded = len(result.Bookings)
	res.Dropped = result.Dropped
	res.Warnings = append(res.Warnings, result.Warnings...)

	err = sess.Ledger.Transact(func(current []model.Booking) ([]model.Booking, error) {
		if mode == dto.ImportModeReplace {
			res.Added = len(result.Bookings)
			res.Total = len(result.Bookings)

			return result.Bookings, nil
		}

		merged := merge.Resolve(current, result.Bookings)
		res.FromMerge(merged)
		res.Total = len(merged.Bookings)

		return merged.Bookings, nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to apply import: %w", err)
	}

	log.Info().
		Str("session_id", sess.ID).
		Str("source", string(src)).
		Str("mode", mode).
		Int("added", res.Added).
		Int("dropped", res.Dropped).
		Msg("bookings imported")

	s.changed(ctx, sess)

	return res, nil
}
