// Package resolving looks up per-(ASP, media) login secrets. A missing
// credential is an expected steady-state condition, not a fatal error: the
// run coordinator skips the pair and moves on.
package resolving

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/secrets"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

type CredentialResolver interface {
	// Resolve returns the login credential for an (asp, media) pair.
	// Returns domain.ErrCredentialMissing when the pair is not onboarded or
	// either secret reference cannot be resolved.
	Resolve(ctx context.Context, aspID, mediaID string) (*domain.Credential, error)
}

type Service struct {
	credentialRepo repository.AspCredentialRepository
	secretStore    secrets.Store
}

func NewService(credentialRepo repository.AspCredentialRepository, secretStore secrets.Store) *Service {
	return &Service{
		credentialRepo: credentialRepo,
		secretStore:    secretStore,
	}
}

func (s *Service) Resolve(ctx context.Context, aspID, mediaID string) (*domain.Credential, error) {
	row, err := s.credentialRepo.Get(aspID, mediaID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up asp credential")
	}
	if row == nil {
		return nil, errors.Wrapf(domain.ErrCredentialMissing, "asp=%s media=%s", aspID, mediaID)
	}

	username, ok := s.secretStore.Get(row.UsernameSecretKey)
	if !ok {
		return nil, errors.Wrapf(domain.ErrCredentialMissing, "secret %s unresolved", row.UsernameSecretKey)
	}

	password, ok := s.secretStore.Get(row.PasswordSecretKey)
	if !ok {
		return nil, errors.Wrapf(domain.ErrCredentialMissing, "secret %s unresolved", row.PasswordSecretKey)
	}

	return &domain.Credential{Username: username, Password: password}, nil
}
