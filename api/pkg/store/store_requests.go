package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Artox/open-build-service/api/pkg/types"
)

// CreateRequest stores a request and its actions in one transaction
func (s *PostgresStore) CreateRequest(ctx context.Context, request *types.BsRequest) (*types.BsRequest, error) {
	if len(request.Actions) == 0 {
		return nil, fmt.Errorf("request needs at least one action")
	}
	if request.State == "" {
		request.State = types.RequestStateNew
	}

	err := s.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(request).Error
	})
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return request, nil
}

// ListSubmitRequestTargets returns one row per submit action of requests in the
// given states, ordered by request id
func (s *PostgresStore) ListSubmitRequestTargets(ctx context.Context, targetProjects []string, states []types.RequestState) ([]*types.RequestTarget, error) {
	q := s.gdb.WithContext(ctx).
		Table("bs_requests").
		Select("bs_requests.id AS id, bs_requests.state AS state, " +
			"bs_request_actions.target_project AS target_project, bs_request_actions.target_package AS target_package").
		Joins("JOIN bs_request_actions ON bs_request_actions.bs_request_id = bs_requests.id").
		Where("bs_request_actions.type = ?", types.RequestActionTypeSubmit).
		Where("bs_requests.state IN ?", states)
	if len(targetProjects) > 0 {
		q = q.Where("bs_request_actions.target_project IN ?", targetProjects)
	}

	var targets []*types.RequestTarget
	err := q.Order("bs_requests.id").Order("bs_request_actions.id").Scan(&targets).Error
	if err != nil {
		return nil, fmt.Errorf("error listing submit requests: %w", err)
	}
	return targets, nil
}

func (s *PostgresStore) ListRequestsByIDs(ctx context.Context, ids []uint) ([]*types.BsRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var requests []*types.BsRequest
	err := s.gdb.WithContext(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id IN ?", ids).
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	return requests, nil
}

func (s *PostgresStore) ListRequests(ctx context.Context, query *ListRequestsQuery) ([]*types.BsRequest, error) {
	db := s.gdb.WithContext(ctx)

	actions := db.Model(&types.BsRequestAction{}).Select("bs_request_id")
	if query.Project != "" {
		actions = actions.Where("source_project = ? OR target_project = ?", query.Project, query.Project)
	}
	if len(query.Types) > 0 {
		actions = actions.Where("type IN ?", query.Types)
	}

	q := db.Preload("Actions", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id IN (?)", actions)
	if len(query.States) > 0 {
		q = q.Where("state IN ?", query.States)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	var requests []*types.BsRequest
	err := q.Order("id DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	return requests, nil
}
