package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bookhaven/bookhaven-backend/internal/config"
	"github.com/bookhaven/bookhaven-backend/internal/models"
)

var ErrQueryTooShort = errors.New("search query must be at least 2 characters")

const defaultCoverImage = "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=300&h=400&fit=crop"

// BooksService proxies free-text searches to the external book-metadata
// provider and maps results into the local product shape. Results are
// ephemeral: nothing is cached or persisted.
type BooksService struct {
	apiURL     string
	maxResults int
	lang       string
	httpClient *http.Client
}

func NewBooksService(cfg *config.Config) *BooksService {
	return &BooksService{
		apiURL:     cfg.BooksAPIURL,
		maxResults: cfg.BooksMaxResults,
		lang:       cfg.BooksLang,
		httpClient: &http.Client{Timeout: cfg.BooksAPITimeout},
	}
}

type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title       string   `json:"title"`
			Authors     []string `json:"authors"`
			Description string   `json:"description"`
			Categories  []string `json:"categories"`
			PageCount   int      `json:"pageCount"`
			ImageLinks  struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search forwards the query to the provider and synthesizes products with
// namespaced ids and random prices (the provider carries no price data).
func (s *BooksService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if len(query) < 2 {
		return nil, ErrQueryTooShort
	}

	endpoint := fmt.Sprintf("%s?q=%s&maxResults=%d&langRestrict=%s",
		s.apiURL, url.QueryEscape(query), s.maxResults, s.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("book search provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("book search provider status %d", resp.StatusCode)
	}

	var volumes volumesResponse
	if err := json.Unmarshal(body, &volumes); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if len(volumes.Items) == 0 {
		return []models.Product{}, nil
	}

	books := make([]models.Product, 0, len(volumes.Items))
	for i, item := range volumes.Items {
		info := item.VolumeInfo

		id := item.ID
		if id == "" {
			id = strconv.Itoa(i)
		}

		name := info.Title
		if name == "" {
			name = "Untitled"
		}

		author := "Unknown author"
		if len(info.Authors) > 0 {
			author = strings.Join(info.Authors, ", ")
		}

		description := info.Description
		if description == "" {
			description = "No description available."
		}

		category := "General"
		if len(info.Categories) > 0 {
			category = info.Categories[0]
		}

		image := info.ImageLinks.Thumbnail
		if image == "" {
			image = defaultCoverImage
		}

		books = append(books, models.Product{
			ID:          models.ExternalIDPrefix + id,
			Name:        name,
			Price:       randomPrice(),
			Description: description,
			Category:    category,
			Image:       image,
			Author:      author,
			Pages:       info.PageCount,
			External:    true,
		})
	}

	return books, nil
}

// randomPrice assigns a synthetic price in [1500, 5499]; the provider has no
// price data.
func randomPrice() float64 {
	return float64(rand.Intn(4000) + 1500)
}
