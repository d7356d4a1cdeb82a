package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetspace/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName, f.lastData = name, data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendRegistrationNotice(t *testing.T) {
	data := &domain.RegistrationEmailData{
		Email:     "bot@example.com",
		AgentName: "bot",
		KeyPrefix: "ms_test_abcdefgh",
		Tier:      domain.TierReadWrite,
		RateLimit: 50,
	}

	tests := []struct {
		name      string
		data      *domain.RegistrationEmailData
		renderErr error
		sendErr   error
		wantErr   string
	}{
		{name: "sent", data: data},
		{name: "nil data", data: nil, wantErr: "data is nil"},
		{name: "render failure", data: data, renderErr: errors.New("no template"), wantErr: "failed to render"},
		{name: "send failure", data: data, sendErr: errors.New("throttled"), wantErr: "failed to send"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.sendErr}
			renderer := &fakeRenderer{err: tt.renderErr}
			svc := NewEmailService(mailer, renderer, testLogger)

			err := svc.SendRegistrationNotice(context.Background(), tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "registration", renderer.lastName)
			assert.Same(t, data, renderer.lastData)
			assert.Equal(t, "bot@example.com", mailer.to)
			assert.Equal(t, "subject", mailer.subject)
			assert.Equal(t, "<p>html</p>", mailer.html)
			assert.Equal(t, "text", mailer.text)
		})
	}
}
