package index

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"trialsync/internal/config"
	"trialsync/internal/logger"
	"trialsync/internal/models"
)

// Indexer errors.
var (
	ErrIndexCreationFailed = errors.New("index creation failed")
	ErrBulkIndexFailed     = errors.New("bulk index failed")
)

// Indexer manages index creation and bulk document ingestion.
type Indexer struct {
	client *Client
	cfg    config.IndexConfig
	logger *logger.Logger
}

// NewIndexer creates a new Indexer.
func NewIndexer(client *Client, cfg config.IndexConfig, log *logger.Logger) *Indexer {
	if cfg.BulkBatchSize < 1 {
		cfg.BulkBatchSize = 500
	}

	return &Indexer{client: client, cfg: cfg, logger: log}
}

// EnsureIndex creates the target index with the given field mapping
// when it does not exist yet.
func (i *Indexer) EnsureIndex(ctx context.Context, mapping map[string]json.RawMessage) error {
	exists, err := i.indexExists(ctx)
	if err != nil {
		return err
	}

	if exists {
		i.logger.Debug("index already exists", "index", i.cfg.Name)
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"mappings": map[string]any{"properties": mapping},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal index mapping: %w", err)
	}

	req := opensearchapi.IndicesCreateRequest{
		Index: i.cfg.Name,
		Body:  bytes.NewReader(body),
	}

	resp, err := req.Do(ctx, i.client.os)
	if err != nil {
		return fmt.Errorf("failed to create index request: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%w: %s", ErrIndexCreationFailed, responseError(resp.Body))
	}

	i.logger.Info("index created", "index", i.cfg.Name)

	return nil
}

// BulkIndex writes documents to the index in batches and returns the
// number of documents submitted.
func (i *Indexer) BulkIndex(ctx context.Context, docs []*models.ClinicalTrial) (int, error) {
	indexed := 0

	for start := 0; start < len(docs); start += i.cfg.BulkBatchSize {
		end := start + i.cfg.BulkBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		if err := i.bulkBatch(ctx, docs[start:end]); err != nil {
			return indexed, err
		}

		indexed += end - start
		i.logger.Debug("bulk batch indexed", "indexed", indexed, "total", len(docs))
	}

	return indexed, nil
}

func (i *Indexer) bulkBatch(ctx context.Context, docs []*models.ClinicalTrial) error {
	body, err := BulkBody(i.cfg.Name, docs)
	if err != nil {
		return err
	}

	req := opensearchapi.BulkRequest{Body: bytes.NewReader(body)}

	resp, err := req.Do(ctx, i.client.os)
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%w: %s", ErrBulkIndexFailed, responseError(resp.Body))
	}

	var result struct {
		Errors bool `json:"errors"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}

	if result.Errors {
		return fmt.Errorf("%w: one or more documents rejected", ErrBulkIndexFailed)
	}

	return nil
}

// BulkBody renders documents as an OpenSearch bulk request payload,
// one action line and one source line per document. The document id
// moves to the action line: _id is a metadata field, and the cluster
// rejects any source that carries it.
func BulkBody(indexName string, docs []*models.ClinicalTrial) ([]byte, error) {
	var buf bytes.Buffer

	for _, doc := range docs {
		action, err := json.Marshal(map[string]any{
			"index": map[string]string{"_index": indexName, "_id": doc.ID},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal bulk action: %w", err)
		}

		source, err := marshalSource(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
		}

		buf.Write(action)
		buf.WriteByte('\n')
		buf.Write(source)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// marshalSource renders a document without its _id key. The key stays
// in file output for downstream parity but must not appear in an
// indexed source.
func marshalSource(doc *models.ClinicalTrial) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	delete(fields, "_id")

	return json.Marshal(fields)
}

func (i *Indexer) indexExists(ctx context.Context) (bool, error) {
	req := opensearchapi.IndicesExistsRequest{Index: []string{i.cfg.Name}}

	resp, err := req.Do(ctx, i.client.os)
	if err != nil {
		return false, fmt.Errorf("failed to check index existence: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == 200, nil
}

func responseError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return "unreadable error response"
	}

	return string(data)
}
