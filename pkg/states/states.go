// Package states serves the region reference list for the address form.
package states

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/vitrine-store/gateway/pkg/global"
	"github.com/vitrine-store/gateway/pkg/models"
)

// Fallback is returned whenever the reference service is unreachable, so a
// transient outage never blocks checkout entirely.
func Fallback() []models.State {
	return []models.State{
		{Code: "SP", Name: "São Paulo"},
		{Code: "RJ", Name: "Rio de Janeiro"},
		{Code: "MG", Name: "Minas Gerais"},
	}
}

type Service struct {
	url  string
	http *http.Client
}

func NewService(url string, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{url: url, http: httpClient}
}

func NewServiceFromEnv() *Service {
	return NewService(global.GetEnvOrDefault("STATES_API_URL", ""), nil)
}

// List fetches the reference list. It never fails: any error degrades to the
// hardcoded fallback, logged only.
func (s *Service) List(ctx context.Context) []models.State {
	states, err := s.fetch(ctx)
	if err != nil {
		log.Printf("Warning: failed to load states list: %v", err)
		return Fallback()
	}
	return states
}

func (s *Service) fetch(ctx context.Context) ([]models.State, error) {
	if s.url == "" {
		return nil, fmt.Errorf("no states service configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("states service returned status %d", resp.StatusCode)
	}

	var sr models.StatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	if !sr.Success {
		return nil, fmt.Errorf("states service reported failure: %s", sr.Message)
	}
	return sr.States, nil
}
