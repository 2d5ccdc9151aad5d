package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/domain/service"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"
	"mimapa/internal/validation"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	tokenService service.TokenService
	sanitizer    service.TextSanitizer
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	metrics      service.MetricsRecorder
	cfg          *config.ReviewsConfig
	logger       *slog.Logger
	now          func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	TokenService service.TokenService
	Sanitizer    service.TextSanitizer
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	reviewsCfg := params.Config.Reviews
	if reviewsCfg == nil {
		reviewsCfg = &config.ReviewsConfig{DefaultLimit: 100, MaxLimit: 100, DefaultRadiusKm: 5, MinRadiusKm: 0.1, MaxRadiusKm: 100}
	}

	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		tokenService: params.TokenService,
		sanitizer:    params.Sanitizer,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		metrics:      params.Metrics,
		cfg:          reviewsCfg,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a review authored by the caller. The token snapshot is taken from the
// credential the caller presented and is never recomputed afterwards.
func (srv *reviewService) Create(ctx context.Context, author *usecase.Identity, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if author.Email() == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("review author missing")
	}

	provenance, err := srv.tokenService.ExtractProvenance(author.Token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if input == nil {
		input = &usecase.CreateReviewInput{}
	}
	input.NombreEstablecimiento = srv.sanitize(input.NombreEstablecimiento)
	input.Direccion = srv.sanitize(input.Direccion)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate review id")
	}

	imagenes := append([]string{}, input.Imagenes...)
	review := &entity.Review{
		ID:                    id,
		NombreEstablecimiento: *input.NombreEstablecimiento,
		Direccion:             *input.Direccion,
		Latitud:               *input.Latitud,
		Longitud:              *input.Longitud,
		Valoracion:            *input.Valoracion,
		EmailAutor:            author.User.Email,
		NombreAutor:           author.User.Name,
		Provenance:            *provenance,
		Imagenes:              imagenes,
		CreatedAt:             srv.now().UTC(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to create review", slog.String("email_autor", review.EmailAutor), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.afterMutation(ctx, entity.ReviewCreated, review.ID, review.EmailAutor)

	return review, nil
}

func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound.WrapMessage("review not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

func (srv *reviewService) List(ctx context.Context, input usecase.ListReviewsInput) (*usecase.ReviewList, error) {
	page, err := srv.resolvePage(input.Page)
	if err != nil {
		return nil, err
	}

	reviews, total, err := srv.reviewRepo.List(ctx, entity.ReviewFilter{EmailAutor: input.EmailAutor}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewList{Reviews: reviews, Total: total}, nil
}

func (srv *reviewService) SearchByEstablishment(ctx context.Context, nombre string, page usecase.PageInput) ([]*entity.Review, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "nombre",
			Rule:    "required",
			Message: "es obligatorio",
		})
	}

	window, err := srv.resolvePage(page)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.SearchByEstablishment(ctx, nombre, window)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search reviews by establishment")
	}

	return reviews, nil
}

// SearchByLocation approximates a radius with a square window of radius/111 degrees
// on each axis.
func (srv *reviewService) SearchByLocation(ctx context.Context, input usecase.SearchByLocationInput) ([]*entity.Review, error) {
	radius := srv.cfg.DefaultRadiusKm
	if input.RadioKm != nil {
		radius = *input.RadioKm
	}

	var violations []domainerrors.FieldViolation
	violations = appendRange(violations, "latitud", input.Latitud, -90, 90)
	violations = appendRange(violations, "longitud", input.Longitud, -180, 180)
	violations = appendRange(violations, "radio_km", radius, srv.cfg.MinRadiusKm, srv.cfg.MaxRadiusKm)
	if len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	bound := orb.Point{input.Longitud, input.Latitud}.Bound().Pad(radius / entity.KmPerDegree)

	reviews, err := srv.reviewRepo.SearchInBound(ctx, bound)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search reviews by location")
	}

	return reviews, nil
}

func (srv *reviewService) SearchByRating(ctx context.Context, input usecase.SearchByRatingInput) ([]*entity.Review, error) {
	minRating, maxRating := entity.MinRating, entity.MaxRating
	if input.Min != nil {
		minRating = *input.Min
	}
	if input.Max != nil {
		maxRating = *input.Max
	}

	var violations []domainerrors.FieldViolation
	violations = appendRange(violations, "min_valoracion", minRating, entity.MinRating, entity.MaxRating)
	violations = appendRange(violations, "max_valoracion", maxRating, entity.MinRating, entity.MaxRating)
	if len(violations) == 0 && minRating > maxRating {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   "min_valoracion",
			Rule:    "ltefield",
			Message: "debe ser menor o igual que max_valoracion",
		})
	}
	if len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	page, err := srv.resolvePage(input.Page)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.SearchByRating(ctx, minRating, maxRating, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search reviews by rating")
	}

	return reviews, nil
}

// Update applies the present fields when the caller is the author. A missing review
// and a review owned by someone else produce the same ErrReviewNotFound.
func (srv *reviewService) Update(ctx context.Context, author *usecase.Identity, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if author.Email() == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("review author missing")
	}

	if input == nil {
		input = &usecase.UpdateReviewInput{}
	}
	input.NombreEstablecimiento = srv.sanitize(input.NombreEstablecimiento)
	input.Direccion = srv.sanitize(input.Direccion)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	patch := input.Patch()

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		owned, err := reviewRepo.UpdateOwned(ctx, id, author.Email(), patch)
		if err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		if !owned {
			return domainerrors.ErrReviewNotFound.WrapMessage("review missing or not owned by caller")
		}

		updated, err = reviewRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	if !patch.IsEmpty() {
		srv.afterMutation(ctx, entity.ReviewUpdated, updated.ID, updated.EmailAutor)
	}

	return updated, nil
}

func (srv *reviewService) Delete(ctx context.Context, author *usecase.Identity, id uuid.UUID) error {
	if author.Email() == "" {
		return domainerrors.ErrUnauthenticated.WrapMessage("review author missing")
	}

	deleted, err := srv.reviewRepo.DeleteOwned(ctx, id, author.Email())
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}
	if !deleted {
		return domainerrors.ErrReviewNotFound.WrapMessage("review missing or not owned by caller")
	}

	srv.afterMutation(ctx, entity.ReviewDeleted, id, author.Email())

	return nil
}

func (srv *reviewService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateReviewQR(review.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render review qr code")
	}

	return png, nil
}

func (srv *reviewService) resolvePage(input usecase.PageInput) (entity.Page, error) {
	limit := srv.cfg.DefaultLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	var violations []domainerrors.FieldViolation
	if input.Skip < 0 {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   "skip",
			Rule:    "gte",
			Message: "debe ser mayor o igual que 0",
		})
	}
	if limit < 1 || limit > srv.cfg.MaxLimit {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   "limit",
			Rule:    "range",
			Message: fmt.Sprintf("debe estar entre 1 y %d", srv.cfg.MaxLimit),
		})
	}
	if len(violations) > 0 {
		return entity.Page{}, domainerrors.NewValidationError(violations...)
	}

	return entity.Page{Skip: input.Skip, Limit: limit}, nil
}

func (srv *reviewService) sanitize(value *string) *string {
	if value == nil {
		return nil
	}

	clean := srv.sanitizer.PlainText(*value)

	return &clean
}

// afterMutation runs once the write has committed. Publishing is best effort.
func (srv *reviewService) afterMutation(ctx context.Context, eventType entity.ReviewEventType, id uuid.UUID, emailAutor string) {
	srv.metrics.RecordReviewMutation(strings.TrimPrefix(string(eventType), "review."))

	event := &entity.ReviewEvent{
		Type:       eventType,
		ReviewID:   id,
		EmailAutor: emailAutor,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishReviewEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("type", string(eventType)),
			slog.Any("reviewID", id),
			slog.Any("error", err))
	}
}

func appendRange(violations []domainerrors.FieldViolation, field string, value, lower, upper float64) []domainerrors.FieldViolation {
	if value >= lower && value <= upper {
		return violations
	}

	return append(violations, domainerrors.FieldViolation{
		Field:   field,
		Rule:    "range",
		Message: fmt.Sprintf("debe estar entre %g y %g", lower, upper),
	})
}
