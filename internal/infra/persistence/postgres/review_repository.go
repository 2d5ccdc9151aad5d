package postgres

import (
	"context"
	"strings"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const insertionOrder = "id ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if kind := classifyConstraint(err); kind == constraintCheck || kind == constraintNotNull {
			return domainerrors.ErrInvalidInput.WrapMessage("review violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) List(ctx context.Context, filter entity.ReviewFilter, page entity.Page) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})
	if filter.EmailAutor != "" {
		query = query.Where("email_autor = ?", filter.EmailAutor)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reviews")
	}

	reviews, err := repo.findPage(query, page)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// SearchByEstablishment treats the term literally; LIKE wildcards in it are escaped.
// Matching non-ASCII names case-insensitively ("CAFÉ" and "café") relies on
// Postgres LOWER. SQLite's LOWER only folds ASCII.
func (repo *reviewRepository) SearchByEstablishment(ctx context.Context, term string, page entity.Page) ([]*entity.Review, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where(`LOWER(nombre_establecimiento) LIKE ? ESCAPE '\'`, pattern)

	return repo.findPage(query, page)
}

func (repo *reviewRepository) SearchInBound(ctx context.Context, bound orb.Bound) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("latitud BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitud BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())

	return repo.findPage(query, entity.Page{})
}

func (repo *reviewRepository) SearchByRating(ctx context.Context, minRating, maxRating float64, page entity.Page) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("valoracion BETWEEN ? AND ?", minRating, maxRating)

	return repo.findPage(query, page)
}

// UpdateOwned filters on id and author in one statement so a concurrent
// ownership check cannot race the write.
func (repo *reviewRepository) UpdateOwned(ctx context.Context, id uuid.UUID, emailAutor string, patch *entity.ReviewPatch) (bool, error) {
	updates := patchColumns(patch)
	if len(updates) == 0 {
		var count int64
		err := repo.db.WithContext(ctx).
			Model(&model.ReviewModel{}).
			Where("id = ? AND email_autor = ?", id, emailAutor).
			Count(&count).Error
		if err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to check review owner")
		}

		return count > 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND email_autor = ?", id, emailAutor).
		Updates(updates)
	if result.Error != nil {
		if classifyConstraint(result.Error) == constraintCheck {
			return false, domainerrors.ErrInvalidInput.WrapMessage("review violates a table constraint")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	return result.RowsAffected > 0, nil
}

func (repo *reviewRepository) DeleteOwned(ctx context.Context, id uuid.UUID, emailAutor string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND email_autor = ?", id, emailAutor).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}

	return result.RowsAffected > 0, nil
}

func (repo *reviewRepository) findPage(query *gorm.DB, page entity.Page) ([]*entity.Review, error) {
	query = query.Order(insertionOrder)
	if page.Skip > 0 {
		query = query.Offset(page.Skip)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	var reviewMs []model.ReviewModel
	if err := query.Find(&reviewMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, toReviewDomain(&reviewMs[i]))
	}

	return reviews, nil
}

func patchColumns(patch *entity.ReviewPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}
	if patch.NombreEstablecimiento != nil {
		updates["nombre_establecimiento"] = *patch.NombreEstablecimiento
	}
	if patch.Direccion != nil {
		updates["direccion"] = *patch.Direccion
	}
	if patch.Latitud != nil {
		updates["latitud"] = *patch.Latitud
	}
	if patch.Longitud != nil {
		updates["longitud"] = *patch.Longitud
	}
	if patch.Valoracion != nil {
		updates["valoracion"] = *patch.Valoracion
	}
	if patch.Imagenes != nil {
		updates["imagenes"] = datatypes.JSONSlice[string](nonNilStrings(*patch.Imagenes))
	}

	return updates
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:                    reviewM.ID,
		NombreEstablecimiento: reviewM.NombreEstablecimiento,
		Direccion:             reviewM.Direccion,
		Latitud:               reviewM.Latitud,
		Longitud:              reviewM.Longitud,
		Valoracion:            reviewM.Valoracion,
		EmailAutor:            reviewM.EmailAutor,
		NombreAutor:           reviewM.NombreAutor,
		Provenance: entity.TokenProvenance{
			IssuedAt:  reviewM.TokenEmision,
			ExpiresAt: reviewM.TokenCaducidad,
			RawToken:  reviewM.TokenOAuth,
		},
		Imagenes:  nonNilStrings(reviewM.Imagenes),
		CreatedAt: reviewM.CreatedAt,
	}
}

func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:                    review.ID,
		NombreEstablecimiento: review.NombreEstablecimiento,
		Direccion:             review.Direccion,
		Latitud:               review.Latitud,
		Longitud:              review.Longitud,
		Valoracion:            review.Valoracion,
		EmailAutor:            review.EmailAutor,
		NombreAutor:           review.NombreAutor,
		TokenOAuth:            review.Provenance.RawToken,
		TokenEmision:          review.Provenance.IssuedAt,
		TokenCaducidad:        review.Provenance.ExpiresAt,
		Imagenes:              nonNilStrings(review.Imagenes),
		CreatedAt:             review.CreatedAt,
	}
}
