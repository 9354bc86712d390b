package resolving

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/secrets"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

func TestResolveReturnsCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAspCredentialRepository(ctrl)

	repo.EXPECT().Get("asp-1", "media-1").Return(&domain.AspCredential{
		AspID:             "asp-1",
		MediaID:           "media-1",
		UsernameSecretKey: "a8_user",
		PasswordSecretKey: "a8_pass",
	}, nil)

	store := secrets.StaticStore{
		"a8_user": "someone@example.com",
		"a8_pass": "hunter2",
	}

	service := NewService(repo, store)

	cred, err := service.Resolve(context.Background(), "asp-1", "media-1")
	require.NoError(t, err)

	assert.Equal(t, "someone@example.com", cred.Username)
	assert.Equal(t, "hunter2", cred.Password)
}

func TestResolveMissingRowIsCredentialMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAspCredentialRepository(ctrl)

	repo.EXPECT().Get("asp-1", "media-1").Return(nil, nil)

	service := NewService(repo, secrets.StaticStore{})

	_, err := service.Resolve(context.Background(), "asp-1", "media-1")
	assert.ErrorIs(t, err, domain.ErrCredentialMissing)
}

func TestResolveUnresolvedSecretIsCredentialMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAspCredentialRepository(ctrl)

	repo.EXPECT().Get("asp-1", "media-1").Return(&domain.AspCredential{
		UsernameSecretKey: "a8_user",
		PasswordSecretKey: "a8_pass",
	}, nil)

	// Username resolves, password does not.
	store := secrets.StaticStore{"a8_user": "someone@example.com"}

	service := NewService(repo, store)

	_, err := service.Resolve(context.Background(), "asp-1", "media-1")
	assert.ErrorIs(t, err, domain.ErrCredentialMissing)
}
