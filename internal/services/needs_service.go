package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-web/internal/cache"
	"github.com/volunteerhub/volunteerhub-web/internal/models"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
)

var ErrNotNeedOwner = errors.New("need belongs to another volunteer")

// NeedsService handles volunteer needs. All data lives in the backend; this
// service adds the short-lived browse feed cache, ownership checks, and the
// re-fetch after every mutation.
type NeedsService struct {
	needs NeedsAPI
	feed  *cache.NeedsFeedCache
}

// NewNeedsService creates a new NeedsService. A nil feed cache disables
// caching and every browse request hits the backend.
func NewNeedsService(needs NeedsAPI, feed *cache.NeedsFeedCache) *NeedsService {
	return &NeedsService{
		needs: needs,
		feed:  feed,
	}
}

// Browse returns the public needs feed, served from cache when fresh
func (s *NeedsService) Browse(ctx context.Context, page hubapi.Page) ([]hubapi.Need, error) {
	if s.feed != nil {
		if needs, ok := s.feed.Get(page); ok {
			return needs, nil
		}
	}

	needs, err := s.needs.List(ctx, page)
	if err != nil {
		logger.Error("Failed to list needs", zap.Error(err))
		return nil, apperrors.UpstreamError("list needs", err)
	}

	if s.feed != nil {
		s.feed.Set(page, needs)
	}
	return needs, nil
}

// GetNeed returns a single need by id
func (s *NeedsService) GetNeed(ctx context.Context, id int) (*hubapi.Need, error) {
	need, err := s.needs.Get(ctx, id)
	if err != nil {
		if hubapi.IsNotFound(err) {
			return nil, apperrors.NotFoundError("need")
		}
		logger.Error("Failed to get need", zap.Int("need_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("get need", err)
	}
	return need, nil
}

// MyNeeds returns the needs owned by the given volunteer
func (s *NeedsService) MyNeeds(ctx context.Context, ownerID int) ([]hubapi.Need, error) {
	all, err := s.needs.List(ctx, hubapi.DefaultPage())
	if err != nil {
		logger.Error("Failed to list needs", zap.Int("owner_id", ownerID), zap.Error(err))
		return nil, apperrors.UpstreamError("list needs", err)
	}

	mine := make([]hubapi.Need, 0, len(all))
	for _, n := range all {
		if n.OwnerID == ownerID {
			mine = append(mine, n)
		}
	}
	return mine, nil
}

// CreateNeed creates a need and returns the owner's re-fetched needs list
func (s *NeedsService) CreateNeed(ctx context.Context, ownerID int, form *models.NeedForm) ([]hubapi.Need, error) {
	payload := form.ToCreate()

	created, err := s.needs.Create(ctx, &payload)
	if err != nil {
		metrics.NeedMutations.WithLabelValues("create", "error").Inc()
		logger.Error("Failed to create need", zap.Error(err))
		return nil, apperrors.UpstreamError("create need", err)
	}

	metrics.NeedMutations.WithLabelValues("create", "success").Inc()
	logger.Info("Need created",
		zap.Int("need_id", created.ID),
		zap.Int("owner_id", ownerID))

	s.invalidateFeed()
	return s.MyNeeds(ctx, ownerID)
}

// UpdateNeed updates a need the volunteer owns and returns the re-fetched
// needs list. The backend is the authority on ownership; the pre-check here
// just avoids a doomed write.
func (s *NeedsService) UpdateNeed(ctx context.Context, ownerID int, id int, form *models.NeedForm) ([]hubapi.Need, error) {
	if err := s.checkOwnership(ctx, ownerID, id); err != nil {
		return nil, err
	}

	payload := form.ToCreate()
	if _, err := s.needs.Update(ctx, id, &payload); err != nil {
		metrics.NeedMutations.WithLabelValues("update", "error").Inc()
		if hubapi.IsForbidden(err) {
			return nil, ErrNotNeedOwner
		}
		logger.Error("Failed to update need", zap.Int("need_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("update need", err)
	}

	metrics.NeedMutations.WithLabelValues("update", "success").Inc()
	logger.Info("Need updated", zap.Int("need_id", id))

	s.invalidateFeed()
	return s.MyNeeds(ctx, ownerID)
}

// DeleteNeed deletes a need the volunteer owns and returns the re-fetched
// needs list
func (s *NeedsService) DeleteNeed(ctx context.Context, ownerID int, id int) ([]hubapi.Need, error) {
	if err := s.checkOwnership(ctx, ownerID, id); err != nil {
		return nil, err
	}

	if err := s.needs.Delete(ctx, id); err != nil {
		metrics.NeedMutations.WithLabelValues("delete", "error").Inc()
		if hubapi.IsForbidden(err) {
			return nil, ErrNotNeedOwner
		}
		logger.Error("Failed to delete need", zap.Int("need_id", id), zap.Error(err))
		return nil, apperrors.UpstreamError("delete need", err)
	}

	metrics.NeedMutations.WithLabelValues("delete", "success").Inc()
	logger.Info("Need deleted", zap.Int("need_id", id))

	s.invalidateFeed()
	return s.MyNeeds(ctx, ownerID)
}

func (s *NeedsService) checkOwnership(ctx context.Context, ownerID int, id int) error {
	need, err := s.needs.Get(ctx, id)
	if err != nil {
		if hubapi.IsNotFound(err) {
			return apperrors.NotFoundError("need")
		}
		logger.Error("Failed to get need for ownership check",
			zap.Int("need_id", id), zap.Error(err))
		return apperrors.UpstreamError("get need", err)
	}
	if need.OwnerID != ownerID {
		return ErrNotNeedOwner
	}
	return nil
}

func (s *NeedsService) invalidateFeed() {
	if s.feed != nil {
		s.feed.Invalidate()
	}
}
