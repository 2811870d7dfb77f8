package service

import (
	"context"
	"testing"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/model"
	"toko-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitPersistsMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	n, err := svc.Submit(context.Background(), &dto.ContactForm{
		Name:    "Siti",
		Email:   "siti@example.com",
		Subject: "Shipping question",
		Message: "When will my order arrive?",
	})
	require.NoError(t, err)
	assert.Equal(t, "MESSAGE_SENT", n.Code)

	var contact model.Contact
	require.NoError(t, db.First(&contact).Error)
	assert.Equal(t, "siti@example.com", contact.Email)
}

func TestContactSubmitRejectsInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	_, err := svc.Submit(context.Background(), &dto.ContactForm{
		Name:    "Siti",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.EqualValues(t, 0, countRows(t, db, &model.Contact{}))
}
