package service

import (
	"context"
	"fmt"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/model"
	"toko-storefront/internal/notice"
	"toko-storefront/internal/repository"

	"github.com/go-playground/validator/v10"
)

type ContactService interface {
	Submit(ctx context.Context, form *dto.ContactForm) (notice.Notice, error)
}

type contactServiceImpl struct {
	validate    *validator.Validate
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactServiceImpl{
		validate:    validator.New(),
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, form *dto.ContactForm) (notice.Notice, error) {
	if err := s.validate.Struct(form); err != nil {
		return notice.Notice{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	contact := &model.Contact{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return notice.Notice{}, fmt.Errorf("store contact message: %w", err)
	}

	return notice.MessageSent(), nil
}
