// Package requests persists "custom work" service requests together with
// their applicant lists and assignment state.
package requests

import (
	"sync"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/utils"
)

// Repository is the persisted collection of service requests.
type Repository interface {
	// Create prepends a request, opening it with an empty applicant list.
	Create(req models.ServiceRequest) (models.ServiceRequest, bool)
	// GetByID returns the request with the given id, if any.
	GetByID(id string) (models.ServiceRequest, bool)
	// List returns all requests, most recent first.
	List() []models.ServiceRequest
	// ListOpen returns requests still accepting applicants.
	ListOpen() []models.ServiceRequest
	// ListByUser returns the requests created by a user.
	ListByUser(userID string) []models.ServiceRequest
	// AddApplicant appends an applicant. A second application from the same
	// provider is a no-op; the stored request is returned either way.
	AddApplicant(requestID string, applicant models.Applicant) (models.ServiceRequest, bool)
	// Assign marks the request assigned and fixes the assignee. Repeated
	// calls overwrite the assignee: last call wins.
	Assign(requestID, providerID, providerName string) (models.ServiceRequest, bool)
}

type snapshotRepo struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository returns a Repository over the given snapshot store.
func NewRepository(store storage.Store) Repository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) load() []models.ServiceRequest {
	list := []models.ServiceRequest{}
	storage.LoadJSON(r.store, storage.KeyServiceRequests, &list)
	return list
}

func (r *snapshotRepo) save(list []models.ServiceRequest) bool {
	return storage.SaveJSON(r.store, storage.KeyServiceRequests, list)
}

func (r *snapshotRepo) Create(req models.ServiceRequest) (models.ServiceRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = utils.PrefixedID("req")
	}
	if req.Category == "" {
		req.Category = "other"
	}
	req.Status = models.RequestOpen
	req.CreatedAt = time.Now()
	req.Applicants = []models.Applicant{}
	req.AssignedProviderID = ""
	req.AssignedProviderName = ""

	list := append([]models.ServiceRequest{req}, r.load()...)
	return req, r.save(list)
}

func (r *snapshotRepo) GetByID(id string) (models.ServiceRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.load() {
		if req.ID == id {
			return req, true
		}
	}
	return models.ServiceRequest{}, false
}

func (r *snapshotRepo) List() []models.ServiceRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *snapshotRepo) ListOpen() []models.ServiceRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ServiceRequest
	for _, req := range r.load() {
		if req.Status == models.RequestOpen {
			out = append(out, req)
		}
	}
	return out
}

func (r *snapshotRepo) ListByUser(userID string) []models.ServiceRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ServiceRequest
	for _, req := range r.load() {
		if req.CreatedByUserID == userID {
			out = append(out, req)
		}
	}
	return out
}

func (r *snapshotRepo) AddApplicant(requestID string, applicant models.Applicant) (models.ServiceRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i, req := range list {
		if req.ID != requestID {
			continue
		}
		for _, a := range req.Applicants {
			if a.ProviderID == applicant.ProviderID {
				return req, true // idempotent per provider
			}
		}
		if applicant.AppliedAt.IsZero() {
			applicant.AppliedAt = time.Now()
		}
		list[i].Applicants = append(list[i].Applicants, applicant)
		r.save(list)
		return list[i], true
	}
	return models.ServiceRequest{}, false
}

func (r *snapshotRepo) Assign(requestID, providerID, providerName string) (models.ServiceRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i, req := range list {
		if req.ID != requestID {
			continue
		}
		list[i].Status = models.RequestAssigned
		list[i].AssignedProviderID = providerID
		list[i].AssignedProviderName = providerName
		r.save(list)
		return list[i], true
	}
	return models.ServiceRequest{}, false
}
