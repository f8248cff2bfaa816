package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
)

type ContactUseCase interface {
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactUseCaseImpl struct {
	repo     repository.ContactRepository
	notifier repository.ContactNotifierRepository
	lggr     *zap.SugaredLogger
}

func NewContactUseCase(repo repository.ContactRepository, notifier repository.ContactNotifierRepository, lggr *zap.SugaredLogger) ContactUseCase {
	return &contactUseCaseImpl{
		repo:     repo,
		notifier: notifier,
		lggr:     lggr,
	}
}

func (u *contactUseCaseImpl) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	saved, err := u.repo.Create(ctx, req.ToMessage())
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	// notification failures never fail the submission
	if err := u.notifier.NotifyContact(ctx, saved); err != nil {
		u.lggr.Warnw("failed to publish contact notification", "id", saved.ID, "err", err)
	}

	u.lggr.Infow("contact message received", "id", saved.ID, "subject", saved.Subject)
	return &model.ContactResponse{
		Success: true,
		Message: model.ContactSuccessMessage,
		Data:    saved,
	}, nil
}

func (u *contactUseCaseImpl) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return msgs, nil
}
