package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
)

// IssueStore reads issue-tracker export rows for the wealth reports.
type IssueStore interface {
	GetIssues(ctx context.Context, projectKeys []string, window domain.DateWindow) ([]store.IssueRecord, error)
}

type issueStore struct {
	db *sql.DB
}

func NewIssueStore(db *sql.DB) (IssueStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &issueStore{db: db}, nil
}

func (s *issueStore) GetIssues(
	ctx context.Context,
	projectKeys []string,
	window domain.DateWindow,
) ([]store.IssueRecord, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT id, project_key, created_at, labels,
		       total_rental_amount_weo, selling_price_weo, total_commission_amount_weo
		FROM jira_issues
		WHERE project_key = ANY($1)
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(projectKeys), window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("issue query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close issue query rows")
		}
	}(rows)

	var records []store.IssueRecord
	for rows.Next() {
		var (
			id, projectKey                      string
			createdAt                           time.Time
			rawLabels                           []byte
			rentalAmount, sellingPrice, commAmt sql.NullString
		)
		if err := rows.Scan(&id, &projectKey, &createdAt, &rawLabels,
			&rentalAmount, &sellingPrice, &commAmt); err != nil {
			return nil, err
		}

		records = append(records, store.IssueRecord{
			ID:               id,
			ProjectKey:       projectKey,
			CreatedAt:        createdAt,
			Labels:           parseLabels(rawLabels),
			RentalAmount:     rentalAmount.String,
			SellingPrice:     sellingPrice.String,
			CommissionAmount: commAmt.String,
		})
	}

	return records, rows.Err()
}

// parseLabels normalizes the labels column. Rows hold either a JSON array
// of strings or a bare scalar; a scalar becomes a one-element set.
func parseLabels(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var labels []string
	if err := json.Unmarshal(raw, &labels); err == nil {
		return labels
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	return []string{string(raw)}
}
