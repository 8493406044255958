package controllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/mailer"
	"github.com/modelhomeart/mhabackend/models"
	"github.com/modelhomeart/mhabackend/notify"
	"github.com/modelhomeart/mhabackend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingSender captures outgoing mail; failingSender always errors.
type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) Sent() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailer.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

type failingSender struct{}

func (failingSender) Send(context.Context, mailer.Message) error {
	return errors.New("smtp is down")
}

type failingQuotes struct {
	repository.MemoryQuotes
}

func (*failingQuotes) Insert(context.Context, *models.QuoteRequest) error {
	return errors.New("mongo is down")
}

func testDeps() (*Deps, *repository.MemoryQuotes, *recordingSender) {
	quotes := &repository.MemoryQuotes{}
	sender := &recordingSender{}
	deps := &Deps{
		Quotes:     quotes,
		Contacts:   &repository.MemoryContacts{},
		Inquiries:  &repository.MemoryInquiries{},
		Mail:       sender,
		AdminEmail: "owner@modelhomeart.com",
	}
	return deps, quotes, sender
}

func quoteRouter(d *Deps) *gin.Engine {
	r := gin.New()
	r.POST("/api/quote", d.CreateQuoteRequest())
	r.GET("/api/quote", d.GetQuoteRequests())
	r.GET("/admin/quote-requests/:id", d.GetQuoteRequest())
	r.PATCH("/admin/quote-requests/:id/status", d.UpdateQuoteStatus())
	return r
}

func quoteForm(overrides map[string]any) map[string]any {
	form := map[string]any{
		"category":         "Photo",
		"name":             "Jane Doe",
		"email":            "jane@example.com",
		"phone":            "555-0100",
		"preferredContact": "email",
		"budgetRange":      "100-250",
		"timeline":         "standard",
		"services":         []string{"pickup"},
	}
	for k, v := range overrides {
		form[k] = v
	}
	return form
}

func multipartQuote(t *testing.T, form map[string]any, images map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	data, err := json.Marshal(form)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("formData", string(data)))

	i := 0
	for name, content := range images {
		part, err := mw.CreateFormFile(fmt.Sprintf("image%d", i), name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		i++
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateQuoteMultipart(t *testing.T) {
	deps, quotes, sender := testDeps()
	r := quoteRouter(deps)

	body, contentType := multipartQuote(t, quoteForm(nil), map[string][]byte{
		"front.jpg": []byte("jpegdata"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/quote", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)

	stored := quotes.All()
	require.Len(t, stored, 1)
	assert.Equal(t, "NEW", string(stored[0].Status))
	assert.Equal(t, "Photo", stored[0].Category)
	assert.Equal(t, []string{"[image 1 of 1 attached via email]"}, stored[0].Images)
	assert.Equal(t, "pickup", stored[0].Service)

	// One confirmation to the customer, one notification to the owner, the
	// photo attached to both.
	sent := sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"jane@example.com"}, sent[0].To)
	assert.Equal(t, []string{"owner@modelhomeart.com"}, sent[1].To)
	require.Len(t, sent[0].Attachments, 1)
	require.Len(t, sent[1].Attachments, 1)
	assert.Equal(t, "front.jpg", sent[0].Attachments[0].Filename)
	assert.Equal(t, "front.jpg", sent[1].Attachments[0].Filename)
}

func TestQuoteTransportsProduceEquivalentRecords(t *testing.T) {
	form := quoteForm(map[string]any{"description": "wedding photo"})
	photo := []byte("jpegdata")

	// Same form through the multipart path...
	mpDeps, mpQuotes, _ := testDeps()
	mpRouter := quoteRouter(mpDeps)
	body, contentType := multipartQuote(t, form, map[string][]byte{"front.jpg": photo})
	req := httptest.NewRequest(http.MethodPost, "/api/quote", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mpRouter.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// ...and through the legacy JSON path with the same photo as a data URL.
	jsonDeps, jsonQuotes, _ := testDeps()
	jsonRouter := quoteRouter(jsonDeps)
	form["images"] = []string{"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(photo)}
	rec = postJSON(jsonRouter, "/api/quote", form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fromMultipart := mpQuotes.All()[0]
	fromJSON := jsonQuotes.All()[0]

	// Identity and timing differ per request; everything the customer typed
	// must come out the same.
	fromJSON.ID = fromMultipart.ID
	fromJSON.CreatedAt = fromMultipart.CreatedAt
	fromJSON.UpdatedAt = fromMultipart.UpdatedAt
	assert.Equal(t, fromMultipart, fromJSON)
}

func TestCreateQuoteLegacyJSON(t *testing.T) {
	deps, quotes, _ := testDeps()
	r := quoteRouter(deps)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pngdata"))
	rec := postJSON(r, "/api/quote", quoteForm(map[string]any{
		"images":   []string{dataURL},
		"services": nil,
		"service":  "delivery",
		"zipCode":  "92704",
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored := quotes.All()
	require.Len(t, stored, 1)
	assert.Len(t, stored[0].Images, 1)
	// service/services stay interchangeable across both wire shapes
	assert.Equal(t, []string{"delivery"}, stored[0].Services)
}

func TestCreateQuoteMissingFieldsWritesNothing(t *testing.T) {
	deps, quotes, sender := testDeps()
	r := quoteRouter(deps)

	rec := postJSON(r, "/api/quote", map[string]any{
		"category": "Photo",
		"name":     "   ",
		"email":    "jane@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	assert.Empty(t, quotes.All(), "validation failures must not touch the database")
	assert.Empty(t, sender.Sent())
}

func TestCreateQuoteSucceedsWhenMailerFails(t *testing.T) {
	deps, quotes, _ := testDeps()
	deps.Mail = failingSender{}
	r := quoteRouter(deps)

	rec := postJSON(r, "/api/quote", quoteForm(nil))

	assert.Equal(t, http.StatusOK, rec.Code, "email failure must not fail the submission")
	assert.Len(t, quotes.All(), 1)
}

func TestCreateQuoteSucceedsWhenSlackFails(t *testing.T) {
	deps, quotes, _ := testDeps()
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	deps.Slack = notify.New(srv.URL)
	r := quoteRouter(deps)

	rec := postJSON(r, "/api/quote", quoteForm(nil))
	assert.Equal(t, http.StatusOK, rec.Code, "webhook failure must not fail the submission")
	assert.Len(t, quotes.All(), 1)
}

func TestCreateQuoteDBFailureIsFatal(t *testing.T) {
	deps, _, sender := testDeps()
	deps.Quotes = &failingQuotes{}
	r := quoteRouter(deps)

	rec := postJSON(r, "/api/quote", quoteForm(nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to submit quote request")
	assert.Empty(t, sender.Sent(), "no notifications when the record was never written")
}

func TestCreateQuoteRejectsOversizedUpload(t *testing.T) {
	deps, quotes, _ := testDeps()
	r := quoteRouter(deps)

	body, contentType := multipartQuote(t, quoteForm(nil), map[string][]byte{
		"huge.jpg": bytes.Repeat([]byte("x"), 5<<20),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/quote", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, quotes.All())
}

func TestGetQuoteRequestsPagination(t *testing.T) {
	deps, _, _ := testDeps()
	r := quoteRouter(deps)

	for i := 0; i < 5; i++ {
		rec := postJSON(r, "/api/quote", quoteForm(map[string]any{
			"name": fmt.Sprintf("Customer %d", i),
		}))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quote?page=2&limit=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Quotes     []json.RawMessage `json:"quotes"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Quotes, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
}

func TestGetQuoteRequestsStatusFilter(t *testing.T) {
	deps, quotes, _ := testDeps()
	r := quoteRouter(deps)

	for i := 0; i < 3; i++ {
		rec := postJSON(r, "/api/quote", quoteForm(nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	first := quotes.All()[0]

	rec := httptest.NewRecorder()
	data, _ := json.Marshal(map[string]string{"status": "QUOTED"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/quote-requests/"+first.ID.Hex()+"/status", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/quote?status=QUOTED", nil)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Quotes []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Quotes, 1)
	assert.Equal(t, first.ID.Hex(), resp.Quotes[0].ID)

	// Unknown statuses are rejected, not silently matched against nothing.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/quote?status=BOGUS", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuoteRequestNotFound(t *testing.T) {
	deps, _, _ := testDeps()
	r := quoteRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/admin/quote-requests/64f000000000000000000000", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateQuoteStatusRejectsUnknownStatus(t *testing.T) {
	deps, quotes, _ := testDeps()
	r := quoteRouter(deps)

	rec := postJSON(r, "/api/quote", quoteForm(nil))
	require.Equal(t, http.StatusOK, rec.Code)
	id := quotes.All()[0].ID.Hex()

	data, _ := json.Marshal(map[string]string{"status": "SHIPPED"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/quote-requests/"+id+"/status", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NEW", string(quotes.All()[0].Status))
}
