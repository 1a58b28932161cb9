package catalog

import (
	"context"

	"github.com/celly/backoffice/internal/domain/catalog"
	"github.com/google/uuid"
)

// CollectionService handles collection-related business operations
type CollectionService struct {
	collectionRepo catalog.CollectionRepository
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(collectionRepo catalog.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo}
}

// Create creates a new collection
func (s *CollectionService) Create(ctx context.Context, req CreateCollectionRequest) (*CollectionResponse, error) {
	collection, err := catalog.NewCollection(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}
	return ToCollectionResponse(collection), nil
}

// GetByID retrieves a collection by ID
func (s *CollectionService) GetByID(ctx context.Context, id uuid.UUID) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCollectionResponse(collection), nil
}

// List retrieves all collections with their product counts
func (s *CollectionService) List(ctx context.Context) ([]CollectionListResponse, error) {
	collections, err := s.collectionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionListResponse, len(collections))
	for i := range collections {
		responses[i] = ToCollectionListResponse(&collections[i])
	}
	return responses, nil
}

// ListPublic retrieves collections visible on the storefront
func (s *CollectionService) ListPublic(ctx context.Context) ([]CollectionResponse, error) {
	collections, err := s.collectionRepo.FindPublic(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CollectionResponse, len(collections))
	for i := range collections {
		responses[i] = *ToCollectionResponse(&collections[i])
	}
	return responses, nil
}

// Update applies a partial update to a collection
func (s *CollectionService) Update(ctx context.Context, id uuid.UUID, req UpdateCollectionRequest) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := catalog.CollectionPatch{
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
	}
	if err := collection.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}
	return ToCollectionResponse(collection), nil
}

// Delete removes a collection
func (s *CollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.collectionRepo.Delete(ctx, id)
}
