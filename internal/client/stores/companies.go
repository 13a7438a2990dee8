package stores

import (
	"sync"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
)

// CompanyStore holds the most recently fetched company listing.
//
// Replace swaps the contents wholesale; there is no merge or append. A failed
// fetch leaves the previous listing in place.
type CompanyStore struct {
	mu        sync.RWMutex
	companies []models.Company
}

// NewCompanyStore returns an empty listing.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{}
}

// Replace discards the previous listing and installs the given one.
func (s *CompanyStore) Replace(companies []models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = companies
}

// All returns a copy of the current listing.
func (s *CompanyStore) All() []models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Company, len(s.companies))
	copy(out, s.companies)
	return out
}
