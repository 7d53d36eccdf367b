package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apen/internal/application/contact/usecases"
	"apen/internal/domain/contact"
	"apen/internal/infrastructure/email"
	"apen/internal/shared/logger"
)

type stubDispatcher struct {
	verifyErr error
	sendErr   error
	verified  int
	sent      []contact.OutboundMessage
}

func (d *stubDispatcher) Verify() error {
	d.verified++
	return d.verifyErr
}

func (d *stubDispatcher) Send(msg contact.OutboundMessage) error {
	if d.sendErr != nil {
		return d.sendErr
	}
	d.sent = append(d.sent, msg)
	return nil
}

type stubStore struct{}

func (s *stubStore) Save(ctx context.Context, sub *contact.Submission) error { return nil }

type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func testSettings() usecases.MailSettings {
	return usecases.MailSettings{
		SMTPUser:        "web@apenyasociados.com",
		SMTPPassword:    "secret",
		FromAddress:     "web@apenyasociados.com",
		ProviderAddress: "info@apenyasociados.com",
	}
}

func newContactRouter(t *testing.T, settings usecases.MailSettings, dispatcher *stubDispatcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	uc := usecases.NewSubmitRequestUseCase(settings, email.NewRenderer(), dispatcher, &stubStore{}, log)
	handler := NewContactHandler(uc, log)

	router := gin.New()
	router.POST("/api/contact", handler.Submit)
	return router
}

func postContact(router *gin.Engine, body string) (*httptest.ResponseRecorder, apiEnvelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var envelope apiEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func validBody() string {
	payload := map[string]string{
		"name":     "María Pérez",
		"email":    "maria@example.com",
		"phone":    "+505 8888 8888",
		"service":  "Auditoría Externa",
		"date":     "2026-03-10",
		"time":     "14:00",
		"language": "es",
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestSubmit_Success(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newContactRouter(t, testSettings(), dispatcher)

	w, envelope := postContact(router, validBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Su solicitud ha sido enviada exitosamente. Revise su correo electrónico para la confirmación.", envelope.Message)
	assert.Equal(t, 1, dispatcher.verified)
	require.Len(t, dispatcher.sent, 2)
	assert.Equal(t, "maria@example.com", dispatcher.sent[0].To)
	assert.Equal(t, "info@apenyasociados.com", dispatcher.sent[1].To)
}

func TestSubmit_EnglishSuccessMessage(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newContactRouter(t, testSettings(), dispatcher)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(validBody()), &payload))
	payload["language"] = "en"
	raw, _ := json.Marshal(payload)

	w, envelope := postContact(router, string(raw))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your request has been sent successfully. Check your email for confirmation.", envelope.Message)
}

func TestSubmit_InvalidEmail(t *testing.T) {
	dispatcher := &stubDispatcher{}
	router := newContactRouter(t, testSettings(), dispatcher)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(validBody()), &payload))
	payload["email"] = "not-an-email"
	raw, _ := json.Marshal(payload)

	w, envelope := postContact(router, string(raw))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Por favor ingrese un correo electrónico válido.", envelope.Message)
	// Validation failures must not touch the SMTP server.
	assert.Zero(t, dispatcher.verified)
	assert.Empty(t, dispatcher.sent)
}

func TestSubmit_MissingFields(t *testing.T) {
	router := newContactRouter(t, testSettings(), &stubDispatcher{})

	w, envelope := postContact(router, `{"language":"es"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Por favor complete todos los campos requeridos.", envelope.Message)
}

func TestSubmit_MalformedJSON(t *testing.T) {
	router := newContactRouter(t, testSettings(), &stubDispatcher{})

	w, envelope := postContact(router, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "La solicitud no es válida. Por favor verifique los datos ingresados.", envelope.Message)
}

func TestSubmit_MissingConfiguration(t *testing.T) {
	dispatcher := &stubDispatcher{}
	settings := testSettings()
	settings.SMTPPassword = ""
	router := newContactRouter(t, settings, dispatcher)

	w, envelope := postContact(router, validBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error de configuración del servidor. Por favor intente más tarde.", envelope.Message)
	assert.Zero(t, dispatcher.verified)
}

func TestSubmit_TransportFailure(t *testing.T) {
	dispatcher := &stubDispatcher{verifyErr: assert.AnError}
	router := newContactRouter(t, testSettings(), dispatcher)

	w, envelope := postContact(router, validBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ocurrió un error al procesar su solicitud. Por favor intente más tarde.", envelope.Message)
	assert.Empty(t, dispatcher.sent)
}
