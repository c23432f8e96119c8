package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bucket = "recordings"

// SupabaseClient fala direto com a Storage API do Supabase.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewSupabaseClient(baseURL, apiKey string) *SupabaseClient {
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// EnsureBucket garante que o bucket público de gravações existe.
func (c *SupabaseClient) EnsureBucket() error {
	url := fmt.Sprintf("%s/storage/v1/bucket/%s", c.baseURL, bucket)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	// Bucket não existe ainda: cria público
	payload := map[string]interface{}{
		"id":     bucket,
		"name":   bucket,
		"public": true,
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	createReq, err := http.NewRequest("POST", fmt.Sprintf("%s/storage/v1/bucket", c.baseURL), bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(createReq)
	createReq.Header.Set("Content-Type", "application/json")

	createResp, err := c.http.Do(createReq)
	if err != nil {
		return fmt.Errorf("erro ao criar bucket: %w", err)
	}
	defer createResp.Body.Close()

	if createResp.StatusCode < 200 || createResp.StatusCode > 299 {
		body, _ := io.ReadAll(createResp.Body)
		return fmt.Errorf("supabase recusou criação do bucket (status %d): %s", createResp.StatusCode, string(body))
	}

	return nil
}

// Upload sobe o arquivo com nome aleatório e devolve a URL pública.
func (c *SupabaseClient) Upload(data []byte, filename, contentType string) (string, error) {
	ext := "bin"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	objectPath := fmt.Sprintf("%s.%s", uuid.New().String(), ext)

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, objectPath)

	req, err := http.NewRequest("POST", url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("supabase recusou upload (status %d): %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, objectPath), nil
}

// setHeaders centraliza os headers obrigatórios
func (c *SupabaseClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
}
