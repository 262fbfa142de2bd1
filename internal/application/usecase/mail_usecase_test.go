package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/message"
)

// recordingSender registra los envíos y permite simular un proveedor que
// rechaza el mensaje.
type recordingSender struct {
	sent []message.EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg message.EmailMessage) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// recordingPublisher registra las publicaciones en la cola.
type recordingPublisher struct {
	published []message.EmailMessage
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, msg message.EmailMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func newMailFixture() (*MailUseCase, *fakeUserRepo, *recordingSender, *recordingPublisher) {
	repo := newFakeUserRepo()
	sender := &recordingSender{}
	publisher := &recordingPublisher{}
	uc := NewMailUseCase(repo, sender, publisher)
	uc.now = func() time.Time { return testNow }
	return uc, repo, sender, publisher
}

func registerRecipient(t *testing.T, repo *fakeUserRepo) {
	t.Helper()
	userUC := NewUserUseCase(repo, fakeHasher{})
	userUC.now = func() time.Time { return testNow }
	_, err := userUC.Register(context.Background(), validRegister())
	require.NoError(t, err)
}

func sampleMail() dto.SendMailRequest {
	return dto.SendMailRequest{
		FromEmail:        "noreply@censudex.cl",
		ToEmail:          "ana.perez@censudex.cl",
		Subject:          "Bienvenida",
		PlainTextContent: "Hola Ana",
		HtmlContent:      "<p>Hola Ana</p>",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SendDirect
// ──────────────────────────────────────────────────────────────────────────────

func TestSendDirect_DestinatarioNoRegistradoNoLlamaAlProveedor(t *testing.T) {
	uc, _, sender, _ := newMailFixture()

	err := uc.SendDirect(context.Background(), sampleMail())
	assert.ErrorIs(t, err, domain.ErrRecipientNotRegistered)
	assert.Empty(t, sender.sent, "no debe contactarse al proveedor si el destinatario no es una cuenta")
}

func TestSendDirect_EnviaAlProveedor(t *testing.T) {
	uc, repo, sender, _ := newMailFixture()
	registerRecipient(t, repo)

	err := uc.SendDirect(context.Background(), sampleMail())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "ana.perez@censudex.cl", msg.To)
	assert.Equal(t, "noreply@censudex.cl", msg.From)
	assert.Equal(t, "Bienvenida", msg.Subject)
	assert.Equal(t, testNow, msg.SentAt)
}

func TestSendDirect_PropagaRechazoDelProveedor(t *testing.T) {
	uc, repo, sender, _ := newMailFixture()
	registerRecipient(t, repo)
	sender.err = domain.ErrEmailDelivery

	err := uc.SendDirect(context.Background(), sampleMail())
	assert.ErrorIs(t, err, domain.ErrEmailDelivery)
}

// ──────────────────────────────────────────────────────────────────────────────
// Enqueue / Consume
// ──────────────────────────────────────────────────────────────────────────────

func TestEnqueue_PublicaEnLaCola(t *testing.T) {
	uc, _, sender, publisher := newMailFixture()

	err := uc.Enqueue(context.Background(), sampleMail())
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "ana.perez@censudex.cl", publisher.published[0].To)
	assert.Empty(t, sender.sent, "encolar no contacta al proveedor")
}

func TestConsume_EntregaAlProveedor(t *testing.T) {
	uc, _, sender, _ := newMailFixture()

	msg := message.EmailMessage{To: "ana.perez@censudex.cl", From: "noreply@censudex.cl", Subject: "Hola"}
	require.NoError(t, uc.Consume(context.Background(), msg))
	assert.Len(t, sender.sent, 1)
}

// TestConsume_RechazoDelProveedorPropagaError garantiza que el rechazo del
// proveedor vuelva al runtime de la cola: sin error no habría reentrega.
func TestConsume_RechazoDelProveedorPropagaError(t *testing.T) {
	uc, _, sender, _ := newMailFixture()
	sender.err = errors.New("proveedor caído")

	err := uc.Consume(context.Background(), message.EmailMessage{To: "x@censudex.cl"})
	assert.Error(t, err)
}
