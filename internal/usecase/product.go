package usecase

import (
	"context"
	"errors"

	"franguinho-pos/internal/domain/product"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is inactive")
	ErrProductInUse    = errors.New("product is referenced by existing orders")
)

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error)
	Update(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error)
	FindByID(ctx context.Context, storeID, id uuid.UUID) (*readmodel.ProductRM, error)
	FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*readmodel.ProductRM, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*readmodel.ProductRM, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

type ProductUseCase interface {
	Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateProductRequest) (*readmodel.ProductRM, error)
	Update(ctx context.Context, storeID, id uuid.UUID, req reqdto.UpdateProductRequest) (*readmodel.ProductRM, error)
	Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.ProductRM, error)
	List(ctx context.Context, storeID uuid.UUID) ([]*readmodel.ProductRM, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

type productUseCaseImpl struct {
	productRepo ProductRepository
}

func NewProductUseCase(productRepo ProductRepository) ProductUseCase {
	return &productUseCaseImpl{productRepo: productRepo}
}

func (p *productUseCaseImpl) Create(ctx context.Context, storeID uuid.UUID, req reqdto.CreateProductRequest) (*readmodel.ProductRM, error) {
	entity, err := product.NewProduct(storeID, req.Name, req.Description, req.PriceCents, req.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := p.productRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (p *productUseCaseImpl) Update(ctx context.Context, storeID, id uuid.UUID, req reqdto.UpdateProductRequest) (*readmodel.ProductRM, error) {
	rm, err := p.productRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := product.Reconstruct(rm.ID, rm.StoreID, rm.Name, rm.Description, rm.PriceCents, rm.Category, rm.Active, rm.CreatedAt, rm.UpdatedAt)
	if err := entity.Update(req.Name, req.Description, req.PriceCents, req.Category, req.Active); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	updated, err := p.productRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (p *productUseCaseImpl) Get(ctx context.Context, storeID, id uuid.UUID) (*readmodel.ProductRM, error) {
	rm, err := p.productRepo.FindByID(ctx, storeID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (p *productUseCaseImpl) List(ctx context.Context, storeID uuid.UUID) ([]*readmodel.ProductRM, error) {
	products, err := p.productRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return products, nil
}

func (p *productUseCaseImpl) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, storeID, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProductNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrProductInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
