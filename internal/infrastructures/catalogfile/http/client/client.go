package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	derr "github.com/roamly/roamly/internal/domain/errors"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile/dto"
)

type Client struct {
	documentURL string
	httpClient  *http.Client
}

func NewClient(documentURL string, httpClient *http.Client) *Client {
	return &Client{
		documentURL: documentURL,
		httpClient:  httpClient,
	}
}

// GetDocument fetches the recommendation document. A transport or non-2xx
// failure maps to ErrCatalogUnavailable, a body that does not decode maps
// to ErrMalformedCatalog.
func (c *Client) GetDocument(ctx context.Context) (dto.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL, nil)
	if err != nil {
		return dto.Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dto.Document{}, err
		}
		return dto.Document{}, fmt.Errorf("%w: do request: %v", derr.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return dto.Document{}, fmt.Errorf("%w: unexpected status: %s", derr.ErrCatalogUnavailable, resp.Status)
	}

	var doc dto.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return dto.Document{}, fmt.Errorf("%w: decode document: %v", derr.ErrMalformedCatalog, err)
	}

	return doc, nil
}
