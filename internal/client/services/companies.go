package services

import (
	"context"

	"github.com/jaykumar/jobportal-cli/internal/client/portal"
	"github.com/jaykumar/jobportal-cli/internal/client/repositories/creds"
	"github.com/jaykumar/jobportal-cli/internal/client/stores"
	"github.com/jaykumar/jobportal-cli/internal/logging"
)

// CompanyService keeps the company store in sync with the protected listing
// endpoint.
type CompanyService interface {
	Refresh(ctx context.Context)
}

type companyService struct {
	client portal.Client
	creds  creds.Repository
	store  *stores.CompanyStore
	log    logging.Logger
}

// NewCompanyService constructs a CompanyService publishing into store.
func NewCompanyService(client portal.Client, creds creds.Repository, store *stores.CompanyStore, log logging.Logger) CompanyService {
	return &companyService{client: client, creds: creds, store: store, log: log}
}

// Refresh reads the bearer token, fetches the protected company listing and
// replaces the store contents wholesale.
//
// Failure policy: log-only. Any error is recorded for diagnostics, nothing is
// surfaced to the user, and the store keeps its previous contents.
func (c *companyService) Refresh(ctx context.Context) {
	token, err := c.creds.Get(ctx, creds.TokenKey)
	if err != nil {
		c.log.Error(ctx, "failed to read bearer token", "error", err)
		return
	}

	companies, err := c.client.Companies(ctx, token)
	if err != nil {
		c.log.Error(ctx, "failed to fetch companies", "error", err)
		return
	}
	c.store.Replace(companies)
}
