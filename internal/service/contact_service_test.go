package service

import (
	"context"
	"testing"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mailerStub struct {
	sent []ContactInput
	err  error
}

func (m *mailerStub) Send(_ context.Context, name, email, message string) error {
	m.sent = append(m.sent, ContactInput{Name: name, Email: email, Message: message})
	return m.err
}

func TestContactSubmitRequiresAllFields(t *testing.T) {
	mail := &mailerStub{}
	svc := NewContactService(mail)

	cases := []ContactInput{
		{Name: "", Email: "ana@example.com", Message: "hola"},
		{Name: "Ana", Email: "", Message: "hola"},
		{Name: "Ana", Email: "ana@example.com", Message: "   "},
	}
	for _, in := range cases {
		err := svc.Submit(context.Background(), in)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
	assert.Empty(t, mail.sent)
}

func TestContactSubmitRejectsMalformedEmail(t *testing.T) {
	svc := NewContactService(&mailerStub{})

	err := svc.Submit(context.Background(), ContactInput{
		Name: "Ana", Email: "not-an-email", Message: "hola",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestContactSubmitForwardsTrimmedFields(t *testing.T) {
	mail := &mailerStub{}
	svc := NewContactService(mail)

	err := svc.Submit(context.Background(), ContactInput{
		Name: "  Ana  ", Email: " ana@example.com ", Message: " quiero vender ",
	})

	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Ana", mail.sent[0].Name)
	assert.Equal(t, "ana@example.com", mail.sent[0].Email)
	assert.Equal(t, "quiero vender", mail.sent[0].Message)
}
