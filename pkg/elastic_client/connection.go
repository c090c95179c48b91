package elastic_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atomo10/atomo/pkg/config"
	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
)

type Client struct {
	es *elasticsearch.Client
}

// Connect returns a nil client when no Elasticsearch address is configured
func Connect(cfg *config.Config) (*Client, error) {
	if cfg.ElasticsearchAddress == "" {
		log.Info().Msg("Skipping Elasticsearch setup")
		return nil, nil
	}

	retryBackoff := backoff.NewExponentialBackOff()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticsearchAddress},
		Username:  cfg.ElasticsearchUsername,
		Password:  cfg.ElasticsearchPassword,

		RetryOnStatus: []int{502, 503, 504, 429},

		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},
		MaxRetries: 5,
	})
	if err != nil {
		return nil, err
	}

	if _, err = es.Info(); err != nil {
		return nil, err
	}

	log.Info().Msgf("Elasticsearch client setup for %s", cfg.ElasticsearchAddress)

	return &Client{es: es}, nil
}

func (c *Client) IndexDocument(ctx context.Context, indexName string, document interface{}) error {
	body, err := json.Marshal(document)
	if err != nil {
		return err
	}

	res, err := esapi.IndexRequest{
		Index: indexName,
		Body:  bytes.NewReader(body),
	}.Do(ctx, c.es)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("[%s] error indexing document into %s", res.Status(), indexName)
	}

	return nil
}
