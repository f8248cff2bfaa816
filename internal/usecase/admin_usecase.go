package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/auth"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

// TokenResult is returned by a successful login or password check
type TokenResult struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UMKMID    int64     `json:"umkmId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AdminUseCase interface {
	// Login checks the admin password and issues an admin token
	Login(ctx context.Context, password string) (*TokenResult, error)
	// VerifyEditPassword checks a record's access password and issues an edit token for it
	VerifyEditPassword(ctx context.Context, id int64, password string) (*TokenResult, error)
}

type adminUseCaseImpl struct {
	adminPassword string
	repo          repository.UMKMRepository
	tokens        *auth.TokenIssuer
	lggr          *zap.SugaredLogger
}

// NewAdminUseCase creates the use case; an empty adminPassword disables Login
func NewAdminUseCase(adminPassword string, repo repository.UMKMRepository, tokens *auth.TokenIssuer, lggr *zap.SugaredLogger) AdminUseCase {
	return &adminUseCaseImpl{
		adminPassword: adminPassword,
		repo:          repo,
		tokens:        tokens,
		lggr:          lggr,
	}
}

func (u *adminUseCaseImpl) Login(ctx context.Context, password string) (*TokenResult, error) {
	if u.adminPassword == "" {
		return nil, model.ErrAdminDisabled
	}
	if !auth.SecureCompare(u.adminPassword, password) {
		u.lggr.Warnw("admin login rejected")
		return nil, model.ErrUnauthorized
	}

	token, expiresAt, err := u.tokens.IssueAdmin()
	if err != nil {
		return nil, err
	}
	return &TokenResult{Token: token, Role: auth.RoleAdmin, ExpiresAt: expiresAt}, nil
}

func (u *adminUseCaseImpl) VerifyEditPassword(ctx context.Context, id int64, password string) (*TokenResult, error) {
	stored, err := u.repo.GetPasswordHash(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(stored, password) {
		u.lggr.Warnw("edit password rejected", "id", id)
		return nil, model.ErrUnauthorized
	}

	token, expiresAt, err := u.tokens.IssueEditor(id)
	if err != nil {
		return nil, err
	}
	return &TokenResult{Token: token, Role: auth.RoleEditor, UMKMID: id, ExpiresAt: expiresAt}, nil
}
