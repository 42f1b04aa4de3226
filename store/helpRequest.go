package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/utils"
)

var (
	ErrHelpRequestNotFound    = fmt.Errorf("help request not found")
	ErrInvalidTransition      = fmt.Errorf("the requested status change is not allowed from the current state")
	ErrConcurrentModification = fmt.Errorf("the record was modified by someone else, reload and retry")
)

// CreateHelpRequest opens a new request in the Pending state
func (s *SafeStore) CreateHelpRequest(request *schema.HelpRequest) error {
	request.Status = schema.HELP_REQUEST_PENDING
	request.CreatedDate = time.Now().UTC()
	request.AssignedDate = nil
	request.CompletedDate = nil
	request.Version = 0

	return s.ormDB.Create(request).Error
}

// GetHelpRequest returns a help request by id
func (s *SafeStore) GetHelpRequest(id int) (*schema.HelpRequest, error) {
	var request schema.HelpRequest
	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrHelpRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListHelpRequests returns every help request, newest first
func (s *SafeStore) ListHelpRequests() ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}
	if err := s.ormDB.Order("created_date desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListUserHelpRequests returns the requests owned by a user, newest first
func (s *SafeStore) ListUserHelpRequests(userID int) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}
	if err := s.ormDB.
		Where("requester_id = ?", userID).
		Order("created_date desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListNearbyHelpRequests returns pending requests with known coordinates
// within radiusKM of the given position, great-circle distance.
func (s *SafeStore) ListNearbyHelpRequests(latitude, longitude, radiusKM float64) ([]schema.HelpRequest, error) {
	candidates := []schema.HelpRequest{}
	if err := s.ormDB.
		Where("status = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", schema.HELP_REQUEST_PENDING).
		Order("created_date desc").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	requests := []schema.HelpRequest{}
	for _, r := range candidates {
		if utils.Distance(latitude, longitude, *r.Latitude, *r.Longitude) <= radiusKM {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

// AssignHelpRequest hands a request to a responder. Allowed while the request
// is Pending or already Assigned (re-assignment); the assigned timestamp is
// set only on the first assignment. The version guard rejects stale writers.
func (s *SafeStore) AssignHelpRequest(id, responderID, version int) error {
	now := time.Now().UTC()
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status IN (?) AND version = ?",
			id,
			[]string{schema.HELP_REQUEST_PENDING, schema.HELP_REQUEST_ASSIGNED},
			version,
		).
		Updates(map[string]interface{}{
			"assigned_responder_id": responderID,
			"status":                schema.HELP_REQUEST_ASSIGNED,
			"assigned_date":         gorm.Expr("COALESCE(assigned_date, ?)", now),
			"version":               gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.explainHelpRequestUpdateFailure(id, version)
	}
	return nil
}

// UpdateHelpRequestStatus applies a lifecycle transition. The target status
// must already be validated against the closed vocabulary; this rejects
// illegal edges and stale versions. Entering Completed stamps the completed
// timestamp exactly once.
func (s *SafeStore) UpdateHelpRequestStatus(id int, status string, version int) error {
	sources := schema.HelpRequestTransitionSources(status)
	if len(sources) == 0 {
		return ErrInvalidTransition
	}

	updates := map[string]interface{}{
		"status":  status,
		"version": gorm.Expr("version + 1"),
	}
	if status == schema.HELP_REQUEST_COMPLETED {
		updates["completed_date"] = gorm.Expr("COALESCE(completed_date, ?)", time.Now().UTC())
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status IN (?) AND version = ?", id, sources, version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.explainHelpRequestUpdateFailure(id, version)
	}
	return nil
}

// CancelHelpRequest closes a request that has not been worked on yet. Only
// Pending and Assigned requests can be cancelled.
func (s *SafeStore) CancelHelpRequest(id int, notes string, version int) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status IN (?) AND version = ?",
			id,
			schema.HelpRequestTransitionSources(schema.HELP_REQUEST_CANCELLED),
			version,
		).
		Updates(map[string]interface{}{
			"status":  schema.HELP_REQUEST_CANCELLED,
			"notes":   notes,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.explainHelpRequestUpdateFailure(id, version)
	}
	return nil
}

// explainHelpRequestUpdateFailure turns a zero-row guarded update into the
// precise domain error: the row is gone, someone else won the version race,
// or the transition is not legal from the current state.
func (s *SafeStore) explainHelpRequestUpdateFailure(id, version int) error {
	request, err := s.GetHelpRequest(id)
	if err != nil {
		return err
	}
	if request.Version != version {
		return ErrConcurrentModification
	}
	return ErrInvalidTransition
}
