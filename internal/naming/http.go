package naming

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxResponseBytes = 64 << 10

// HTTPNamer posts the colors to Endpoint and reads back {"name": "..."}.
type HTTPNamer struct {
	Endpoint string
	Client   *http.Client
}

type nameRequest struct {
	Colors []string `json:"colors"`
}

type nameResponse struct {
	Name string `json:"name"`
}

// NewHTTPNamer returns an HTTPNamer using http.DefaultClient.
func NewHTTPNamer(endpoint string) *HTTPNamer {
	return &HTTPNamer{Endpoint: endpoint, Client: http.DefaultClient}
}

// Name implements Namer.
func (n *HTTPNamer) Name(ctx context.Context, colors []string) (string, error) {
	body, err := json.Marshal(nameRequest{Colors: colors})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("naming endpoint returned %s", resp.Status)
	}

	var out nameResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode naming response: %w", err)
	}
	return out.Name, nil
}
