package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Template=MockTemplateService

import (
	"context"
	"fmt"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/internal/domains/template/model"
	"hotelinv/internal/domains/template/model/dto"
	"hotelinv/internal/domains/template/parser"
	"hotelinv/internal/domains/template/repository"
	"hotelinv/shared"
	"hotelinv/shared/cache"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheTemplates = "template:list"

type Template interface {
	List(ctx context.Context) (dto.TemplatesResponse, error)
	Text(ctx context.Context) (string, error)
	Replace(ctx context.Context, req dto.ReplaceTemplatesRequest) (dto.TemplatesResponse, error)
	Upsert(ctx context.Context, req dto.UpsertTemplateRequest) (dto.TemplatesResponse, error)
	Delete(ctx context.Context, req dto.DeleteTemplateRequest) error
	Reset(ctx context.Context) (dto.TemplatesResponse, error)
}

type serviceImpl struct {
	repo  repository.Template
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Template, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Template {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// load returns the stored templates, or the built-in set when nothing is stored yet.
func (s *serviceImpl) load(ctx context.Context) (model.Templates, error) {
	rows, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load templates")

		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if len(rows) == 0 {
		return parser.Parse(model.DefaultContent), nil
	}

	return model.FromRows(rows), nil
}

func (s *serviceImpl) store(ctx context.Context, t model.Templates) (res dto.TemplatesResponse, err error) {
	username, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if err = s.repo.Replace(ctx, t.ToRows(username, timezone.Now())); err != nil {
		log.Error().Err(err).Msg("failed to store templates")

		return res, fmt.Errorf("failed to store templates: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheTemplates)
	}()

	res.FromModel(t)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.TemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.cache.Get(ctx, cacheTemplates, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheTemplates).Msg("cache hit for templates")

		return res, nil
	}

	t, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(t)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheTemplates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save templates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Text(ctx context.Context) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.Text")
	defer scope.End()
	defer scope.TraceIfError(&err)

	t, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	return parser.Format(t), nil
}

func (s *serviceImpl) Replace(ctx context.Context, req dto.ReplaceTemplatesRequest) (res dto.TemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.Replace")
	defer scope.End()
	defer scope.TraceIfError(&err)

	t := parser.Parse(req.Content)
	if len(t) == 0 {
		return res, failure.BadRequestFromString("no templates found in content") // nolint:wrapcheck
	}

	return s.store(ctx, t)
}

func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertTemplateRequest) (res dto.TemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.Upsert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Normalize()
	if req.Category == constant.Empty || req.Message == constant.Empty {
		return res, failure.BadRequestFromString("category and message are required") // nolint:wrapcheck
	}

	t, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	return s.store(ctx, t.Set(req.Category, req.Label, req.Message))
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteTemplateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	label := req.Label
	if label == constant.Empty {
		label = model.DefaultLabel
	}

	t, err := s.load(ctx)
	if err != nil {
		return err
	}

	t, ok := t.Remove(req.Category, label)
	if !ok {
		return failure.NotFound("template") // nolint:wrapcheck
	}

	_, err = s.store(ctx, t)

	return err
}

func (s *serviceImpl) Reset(ctx context.Context) (res dto.TemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".template.Reset")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.store(ctx, parser.Parse(model.DefaultContent))
}
