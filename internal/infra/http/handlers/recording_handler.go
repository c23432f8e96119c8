package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/http/middleware"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

const maxUploadSize = 32 << 20 // 32 MB de áudio é mais que suficiente

// AIService: o pedaço do client Groq que os endpoints de gravação usam.
type AIService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	Summarize(ctx context.Context, input groq.SummarizeInput) (*entity.AISummary, error)
}

type RecordingStorage interface {
	Upload(data []byte, filename, contentType string) (string, error)
}

type RecordingHandler struct {
	Storage     RecordingStorage
	AI          AIService
	Contacts    usecase.ContactRepositoryInterface
	rateLimiter *RateLimiter
	http        *http.Client
}

func NewRecordingHandler(storage RecordingStorage, ai AIService, contacts usecase.ContactRepositoryInterface) *RecordingHandler {
	return &RecordingHandler{
		Storage:     storage,
		AI:          ai,
		Contacts:    contacts,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 uploads/min por IP
		http:        &http.Client{Timeout: 60 * time.Second},
	}
}

type transcribeRequest struct {
	RecordingURL string `json:"recording_url"`
}

type summarizeRequest struct {
	ContactID  string `json:"contact_id"`
	Transcript string `json:"transcript"`
}

// Upload (POST /api/recordings/upload) — multipart com campo "file".
func (h *RecordingHandler) Upload(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeDetail(w, http.StatusTooManyRequests, "Too many uploads. Please try again later.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	url, err := h.Storage.Upload(data, header.Filename, contentType)
	if err != nil {
		middleware.RecordIntegrationError("supabase")
		writeDetail(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// Transcribe (POST /api/recordings/transcribe) — baixa o áudio e manda pro whisper.
func (h *RecordingHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.RecordingURL == "" {
		writeDetail(w, http.StatusBadRequest, "recording_url is required")
		return
	}

	audio, filename, err := h.download(r.Context(), req.RecordingURL)
	if err != nil {
		writeDetail(w, http.StatusBadGateway, err.Error())
		return
	}

	text, err := h.AI.Transcribe(r.Context(), audio, filename)
	if err != nil {
		middleware.RecordIntegrationError("groq")
		writeDetail(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": text})
}

// Summarize (POST /api/recordings/summarize) — análise estruturada da transcrição.
func (h *RecordingHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	contact, err := h.Contacts.FindByID(r.Context(), req.ContactID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			writeDetail(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	contactName := contact.ContactPerson
	if contactName == "" {
		contactName = contact.Name
	}
	dealStage := contact.DealStage
	if dealStage == "" {
		dealStage = entity.StageNew
	}

	summary, err := h.AI.Summarize(r.Context(), groq.SummarizeInput{
		Transcript:  req.Transcript,
		ContactName: contactName,
		Business:    contact.Name,
		Industry:    contact.Industry,
		DealStage:   dealStage,
	})
	if err != nil {
		middleware.RecordIntegrationError("groq")
		writeDetail(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *RecordingHandler) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("falha ao baixar gravação: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("download da gravação retornou status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := "audio.mp3"
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		filename = url[i+1:]
	}

	return data, filename, nil
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
