package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "blackjack",
	}
}

// ElasticsearchRepository implements the Repository interface using
// Elasticsearch as a document store, one document per game keyed by
// the game id.
type ElasticsearchRepository struct {
	client    *elasticsearch.Client
	gameIndex string
}

// NewElasticsearchRepository creates a new Elasticsearch repository
func NewElasticsearchRepository(config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = "blackjack"
	}

	repo := &ElasticsearchRepository{
		client:    client,
		gameIndex: config.IndexPrefix + "_games",
	}

	if err := repo.initIndices(context.Background()); err != nil {
		return nil, fmt.Errorf("error initializing indices: %w", err)
	}

	return repo, nil
}

// initIndices creates the game index if it doesn't exist
func (r *ElasticsearchRepository) initIndices(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.gameIndex})
	if err != nil {
		return fmt.Errorf("error checking if game index exists: %w", err)
	}

	if res.StatusCode == 404 {
		gameMapping := `{
			"mappings": {
				"properties": {
					"id": { "type": "keyword" },
					"player_id": { "type": "long" },
					"bet": { "type": "long" },
					"status": { "type": "keyword" },
					"outcome": { "type": "keyword" },
					"created_at": { "type": "date" },
					"updated_at": { "type": "date" },
					"deck": {
						"properties": {
							"suit": { "type": "keyword" },
							"rank": { "type": "keyword" }
						}
					},
					"player_hand": {
						"properties": {
							"suit": { "type": "keyword" },
							"rank": { "type": "keyword" }
						}
					},
					"dealer_hand": {
						"properties": {
							"suit": { "type": "keyword" },
							"rank": { "type": "keyword" }
						}
					}
				}
			}
		}`

		req := esapi.IndicesCreateRequest{
			Index: r.gameIndex,
			Body:  bytes.NewReader([]byte(gameMapping)),
		}

		res, err := req.Do(ctx, r.client)
		if err != nil {
			return fmt.Errorf("error creating game index: %w", err)
		}
		defer res.Body.Close()

		if res.IsError() {
			return fmt.Errorf("error creating game index: %s", res.String())
		}
	}

	return nil
}

// Save indexes the game document under its id, assigning one on first save
func (r *ElasticsearchRepository) Save(ctx context.Context, g *entities.Game) (*entities.Game, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	jsonData, err := json.Marshal(toDocument(g))
	if err != nil {
		return nil, fmt.Errorf("error marshaling game: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      r.gameIndex,
		DocumentID: g.ID,
		Body:       bytes.NewReader(jsonData),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("error indexing game: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error indexing game: %s", res.String())
	}

	return g, nil
}

// FindByID fetches the game document by id
func (r *ElasticsearchRepository) FindByID(ctx context.Context, id string) (*entities.Game, error) {
	req := esapi.GetRequest{
		Index:      r.gameIndex,
		DocumentID: id,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("error getting game: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, ErrGameNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("error getting game: %s", res.String())
	}

	var result struct {
		Source GameDocument `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing game document: %w", err)
	}

	return result.Source.toEntity(), nil
}

// DeleteByID removes the game document by id
func (r *ElasticsearchRepository) DeleteByID(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{
		Index:      r.gameIndex,
		DocumentID: id,
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return ErrGameNotFound
	}
	if res.IsError() {
		return fmt.Errorf("error deleting game: %s", res.String())
	}

	return nil
}

// Close is a no-op; the Elasticsearch client does not hold connections open
func (r *ElasticsearchRepository) Close() error {
	return nil
}
