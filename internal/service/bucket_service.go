// internal/service/bucket_service.go
package service

import (
	"context"
	"fmt"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
)

// BucketService manages budget envelopes. Budgets may sum to anything here;
// the 100% invariant is enforced by the earning reconciler at earning time.
type BucketService interface {
	Create(ctx context.Context, userID string, cmd command.CreateBucket) (*domain.Bucket, error)
	Update(ctx context.Context, userID string, cmd command.UpdateBucket) (*domain.Bucket, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Bucket, error)
	List(ctx context.Context, userID string) ([]domain.Bucket, error)
}

type bucketService struct {
	dbExecutor repository.DBExecutor
	bucketRepo repository.BucketRepository
}

// NewBucketService creates a new instance of BucketService.
func NewBucketService(dbExecutor repository.DBExecutor, bucketRepo repository.BucketRepository) BucketService {
	return &bucketService{dbExecutor: dbExecutor, bucketRepo: bucketRepo}
}

func (s *bucketService) Create(ctx context.Context, userID string, cmd command.CreateBucket) (*domain.Bucket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	bucket := domain.NewBucket(userID, cmd.Name, cmd.Budget, cmd.Balance)
	if err := s.bucketRepo.Create(ctx, s.dbExecutor, bucket); err != nil {
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return bucket, nil
}

// Update edits a bucket's name, budget and balance. Changing the budget
// does not rewrite allocations already recorded against the bucket: those
// keep the percentage snapshotted when their earning was created.
func (s *bucketService) Update(ctx context.Context, userID string, cmd command.UpdateBucket) (*domain.Bucket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	bucket, err := s.bucketRepo.GetByID(ctx, s.dbExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update bucket %s: %w", cmd.ID, err)
	}
	bucket.Name = cmd.Name
	bucket.Budget = cmd.Budget
	bucket.Balance = cmd.Balance
	if err := s.bucketRepo.Update(ctx, s.dbExecutor, bucket); err != nil {
		return nil, fmt.Errorf("update bucket %s: %w", cmd.ID, err)
	}
	return bucket, nil
}

// Delete removes a bucket. Allocation rows referencing it survive with the
// reference nulled; bucket balances absorbed from past earnings are gone
// with the bucket, never redistributed.
func (s *bucketService) Delete(ctx context.Context, userID, id string) error {
	if err := s.bucketRepo.Delete(ctx, s.dbExecutor, id, userID); err != nil {
		return fmt.Errorf("delete bucket %s: %w", id, err)
	}
	return nil
}

func (s *bucketService) Get(ctx context.Context, userID, id string) (*domain.Bucket, error) {
	bucket, err := s.bucketRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get bucket %s: %w", id, err)
	}
	return bucket, nil
}

func (s *bucketService) List(ctx context.Context, userID string) ([]domain.Bucket, error) {
	buckets, err := s.bucketRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	return buckets, nil
}
