package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/concordlabs/concord/internal/negotiate"
)

// SaveResult inserts a negotiation and its alignments in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - re-saving the same
// negotiation is silently ignored.
func (s *Store) SaveResult(ctx context.Context, result *negotiate.Result) error {
	unmatchedJSON, err := json.Marshal(result.Unmatched)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	complianceJSON, err := json.Marshal(result.Compliance)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO negotiations
		(id, source_schema, target_schema, overall_confidence, decision, unmatched, compliance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		result.ID,
		result.SourceSchema,
		result.TargetSchema,
		result.OverallConfidence,
		string(result.Decision),
		string(unmatchedJSON),
		string(complianceJSON),
		result.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	// Duplicate negotiation ID: nothing inserted, alignments already
	// present from the first save.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tx.Commit()
	}

	for i, a := range result.Alignments {
		sourceJSON, err := json.Marshal(a.Source)
		if err != nil {
			return fmt.Errorf("save alignment %d: %w", i, err)
		}
		targetJSON, err := json.Marshal(a.Target)
		if err != nil {
			return fmt.Errorf("save alignment %d: %w", i, err)
		}
		ruleJSON, err := json.Marshal(a.Rule)
		if err != nil {
			return fmt.Errorf("save alignment %d: %w", i, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO alignments
			(negotiation_id, position, source_field, target_field, source_json, target_json,
			 confidence, alignment_type, basis, explanation, rule_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			result.ID,
			i,
			a.Source.Name,
			a.Target.Name,
			string(sourceJSON),
			string(targetJSON),
			a.Confidence,
			string(a.Type),
			string(a.Basis),
			a.Explanation,
			string(ruleJSON),
		)
		if err != nil {
			return fmt.Errorf("save alignment %d: %w", i, err)
		}
	}

	return tx.Commit()
}
