// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/hefin/models"
)

// memoryUserRepository keeps users in process memory. It is the default
// backend when no database DSN is configured.
type memoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{byEmail: make(map[string]models.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	r.nextID++
	user.UserID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.byEmail[user.Email] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byEmail {
		if user.UserID == userID {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// memoryContactRepository keeps submissions in insertion order.
type memoryContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{}
}

func (r *memoryContactRepository) SaveContact(_ context.Context, contact models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *memoryContactRepository) ListContacts(_ context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Contact, len(r.contacts))
	copy(out, r.contacts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

type memoryPatientRepository struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func NewMemoryPatientRepository() PatientRepository {
	return &memoryPatientRepository{patients: make(map[string]models.Patient)}
}

func (r *memoryPatientRepository) CreatePatient(_ context.Context, p models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients[p.ID] = p
	return nil
}

func (r *memoryPatientRepository) GetPatient(_ context.Context, id string) (models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return models.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

func (r *memoryPatientRepository) ListPatients(_ context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	r.mu.RLock()
	search := strings.ToLower(filter.Search)
	matched := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		if search == "" ||
			strings.Contains(strings.ToLower(p.FirstName), search) ||
			strings.Contains(strings.ToLower(p.LastName), search) ||
			strings.Contains(strings.ToLower(p.Email), search) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastName != matched[j].LastName {
			return matched[i].LastName < matched[j].LastName
		}
		if matched[i].FirstName != matched[j].FirstName {
			return matched[i].FirstName < matched[j].FirstName
		}
		return matched[i].ID < matched[j].ID
	})

	if filter.Offset >= uint64(len(matched)) {
		return []models.Patient{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < uint64(len(matched)) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (r *memoryPatientRepository) UpdatePatient(_ context.Context, p models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.patients[p.ID]
	if !ok {
		return ErrPatientNotFound
	}
	p.CreatedAt = existing.CreatedAt
	r.patients[p.ID] = p
	return nil
}

func (r *memoryPatientRepository) DeletePatient(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return ErrPatientNotFound
	}
	delete(r.patients, id)
	return nil
}
