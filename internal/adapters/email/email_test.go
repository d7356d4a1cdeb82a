package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetspace/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTemplateRenderer_Render(t *testing.T) {
	t.Run("registration", func(t *testing.T) {
		r, err := NewTemplateRenderer()
		require.NoError(t, err)

		data := &domain.RegistrationEmailData{
			Email:     "a@b.com",
			AgentName: "<bot>",
			KeyPrefix: "ms_test_abcd1234",
			Tier:      domain.TierReadWrite,
			RateLimit: 50,
		}
		subject, html, text, err := r.Render("registration", data)
		require.NoError(t, err)

		assert.Equal(t, "Your meetSpace API key for <bot> is ready", subject)
		assert.Contains(t, text, "ms_test_abcd1234")
		assert.Contains(t, text, "readwrite")
		assert.Contains(t, text, "50 requests per hour")
		assert.Contains(t, html, "&lt;bot&gt;", "html body must escape agent name")
		assert.Contains(t, html, "ms_test_abcd1234")
	})

	t.Run("unknown template", func(t *testing.T) {
		r, err := NewTemplateRenderer()
		require.NoError(t, err)

		_, _, _, err = r.Render("does_not_exist", nil)
		assert.Error(t, err)
	})
}

type fakeSES struct {
	last *ses.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	tests := []struct {
		name       string
		fromName   string
		html, text string
		sendErr    error
		wantSource string
		wantErr    bool
	}{
		{name: "html and text with name", fromName: "meetSpace", html: "<p>hi</p>", text: "hi", wantSource: "meetSpace <no-reply@example.com>"},
		{name: "text only without name", text: "hi", wantSource: "no-reply@example.com"},
		{name: "ses error", text: "hi", sendErr: errors.New("throttled"), wantSource: "no-reply@example.com", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSES{err: tt.sendErr}
			m := newSESMailer(client, "no-reply@example.com", tt.fromName, testLogger)

			err := m.Send(context.Background(), "a@b.com", "subject", tt.html, tt.text)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, client.last)
			assert.Equal(t, tt.wantSource, aws.ToString(client.last.Source))
			assert.Equal(t, []string{"a@b.com"}, client.last.Destination.ToAddresses)
			assert.Equal(t, "subject", aws.ToString(client.last.Message.Subject.Data))
			assert.Equal(t, tt.html != "", client.last.Message.Body.Html != nil)
			assert.Equal(t, tt.text != "", client.last.Message.Body.Text != nil)
		})
	}
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "a@b.com", "s", "", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger)
	assert.Error(t, err, "ses without region")

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "x@y.z", SES: SESConfig{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret"}}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}
