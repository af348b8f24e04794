package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/concordlabs/concord/internal/align"
	"github.com/concordlabs/concord/internal/negotiate"
)

// ErrNotFound is returned when a negotiation ID does not exist.
var ErrNotFound = errors.New("negotiation not found")

// Summary is one row of the negotiation listing.
type Summary struct {
	ID                string    `json:"id"`
	SourceSchema      string    `json:"source_schema"`
	TargetSchema      string    `json:"target_schema"`
	OverallConfidence float64   `json:"overall_confidence"`
	Decision          string    `json:"decision"`
	Alignments        int       `json:"alignments"`
	CreatedAt         time.Time `json:"created_at"`
}

// GetResult loads a negotiation and its alignments by ID.
// Returns ErrNotFound when the ID is unknown.
func (s *Store) GetResult(ctx context.Context, id string) (*negotiate.Result, error) {
	result := &negotiate.Result{ID: id}

	var decision, unmatchedJSON, complianceJSON, createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT source_schema, target_schema, overall_confidence, decision, unmatched, compliance, created_at
		FROM negotiations WHERE id = ?
	`, id).Scan(
		&result.SourceSchema,
		&result.TargetSchema,
		&result.OverallConfidence,
		&decision,
		&unmatchedJSON,
		&complianceJSON,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	result.Decision = negotiate.Decision(decision)
	if err := json.Unmarshal([]byte(unmatchedJSON), &result.Unmatched); err != nil {
		return nil, fmt.Errorf("get result: decode unmatched: %w", err)
	}
	if err := json.Unmarshal([]byte(complianceJSON), &result.Compliance); err != nil {
		return nil, fmt.Errorf("get result: decode compliance: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		result.CreatedAt = t
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source_json, target_json, confidence, alignment_type, basis, explanation, rule_json
		FROM alignments WHERE negotiation_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a negotiate.Alignment
		var sourceJSON, targetJSON, alignmentType, basis, ruleJSON string

		if err := rows.Scan(&sourceJSON, &targetJSON, &a.Confidence, &alignmentType, &basis, &a.Explanation, &ruleJSON); err != nil {
			return nil, fmt.Errorf("get result: %w", err)
		}
		if err := json.Unmarshal([]byte(sourceJSON), &a.Source); err != nil {
			return nil, fmt.Errorf("get result: decode source field: %w", err)
		}
		if err := json.Unmarshal([]byte(targetJSON), &a.Target); err != nil {
			return nil, fmt.Errorf("get result: decode target field: %w", err)
		}
		if err := json.Unmarshal([]byte(ruleJSON), &a.Rule); err != nil {
			return nil, fmt.Errorf("get result: decode rule: %w", err)
		}
		a.Type = align.AlignmentType(alignmentType)
		a.Basis = align.Basis(basis)

		result.Alignments = append(result.Alignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	return result, nil
}

// ListSummaries returns the most recent negotiations, newest first.
// A limit below 1 defaults to 50.
func (s *Store) ListSummaries(ctx context.Context, limit int) ([]Summary, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT n.id, n.source_schema, n.target_schema, n.overall_confidence, n.decision,
		       COUNT(a.negotiation_id), n.created_at
		FROM negotiations n
		LEFT JOIN alignments a ON a.negotiation_id = n.id
		GROUP BY n.id
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list negotiations: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.SourceSchema, &sum.TargetSchema, &sum.OverallConfidence, &sum.Decision, &sum.Alignments, &createdAt); err != nil {
			return nil, fmt.Errorf("list negotiations: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			sum.CreatedAt = t
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list negotiations: %w", err)
	}

	return summaries, nil
}
