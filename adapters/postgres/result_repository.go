package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
	"bloodgas/ports"

	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ResultRepository for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &ResultRepositoryImpl{db: db}
}

// EnsureSchema creates the results table if it does not exist
func (r *ResultRepositoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS blood_gas_results (
			id UUID PRIMARY KEY,
			batch_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ph DOUBLE PRECISION NOT NULL,
			pco2 DOUBLE PRECISION NOT NULL,
			po2 DOUBLE PRECISION NOT NULL,
			hco3 DOUBLE PRECISION NOT NULL,
			base_excess DOUBLE PRECISION NOT NULL,
			sao2 DOUBLE PRECISION NOT NULL,
			fio2 DOUBLE PRECISION NOT NULL,
			pf_ratio DOUBLE PRECISION NOT NULL,
			aa_gradient DOUBLE PRECISION NOT NULL,
			expected_aa_gradient DOUBLE PRECISION NOT NULL,
			sodium DOUBLE PRECISION NOT NULL,
			potassium DOUBLE PRECISION NOT NULL,
			chloride DOUBLE PRECISION NOT NULL,
			glucose DOUBLE PRECISION NOT NULL,
			anion_gap DOUBLE PRECISION NOT NULL,
			corrected_anion_gap DOUBLE PRECISION NOT NULL,
			delta_gap DOUBLE PRECISION NOT NULL,
			lactate DOUBLE PRECISION NOT NULL,
			hemoglobin DOUBLE PRECISION NOT NULL,
			albumin DOUBLE PRECISION NOT NULL,
			interpretation JSONB NOT NULL,
			generation_params JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_blood_gas_results_batch ON blood_gas_results (batch_id);
		CREATE INDEX IF NOT EXISTS idx_blood_gas_results_created ON blood_gas_results (created_at DESC)`)
	return err
}

// Save persists a generated result
func (r *ResultRepositoryImpl) Save(ctx context.Context, result abg.BloodGasResult) error {
	interpretationJSON, _ := json.Marshal(result.Interpretation)
	paramsJSON, _ := json.Marshal(result.Params)

	var batchID *string
	if result.BatchID != "" {
		s := result.BatchID.String()
		batchID = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blood_gas_results (
			id, batch_id, created_at,
			ph, pco2, po2, hco3, base_excess, sao2,
			fio2, pf_ratio, aa_gradient, expected_aa_gradient,
			sodium, potassium, chloride, glucose,
			anion_gap, corrected_anion_gap, delta_gap,
			lactate, hemoglobin, albumin,
			interpretation, generation_params
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		ON CONFLICT (id) DO UPDATE SET
			interpretation = EXCLUDED.interpretation,
			generation_params = EXCLUDED.generation_params`,
		result.ID.String(), batchID, result.CreatedAt.Time(),
		result.PH, result.PCO2, result.PO2, result.HCO3, result.BaseExcess, result.SaO2,
		result.FiO2, result.PFRatio, result.AAGradient, result.ExpectedAAGradient,
		result.Sodium, result.Potassium, result.Chloride, result.Glucose,
		result.AnionGap, result.CorrectedAnionGap, result.DeltaGap,
		result.Lactate, result.Hemoglobin, result.Albumin,
		interpretationJSON, paramsJSON)

	return err
}

const resultColumns = `id, batch_id, created_at,
	ph, pco2, po2, hco3, base_excess, sao2,
	fio2, pf_ratio, aa_gradient, expected_aa_gradient,
	sodium, potassium, chloride, glucose,
	anion_gap, corrected_anion_gap, delta_gap,
	lactate, hemoglobin, albumin,
	interpretation, generation_params`

// Get retrieves a result by ID
func (r *ResultRepositoryImpl) Get(ctx context.Context, id core.ResultID) (*abg.BloodGasResult, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resultColumns+` FROM blood_gas_results WHERE id = $1`, id.String())

	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, core.ErrResultNotFound)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListRecent returns the most recently generated results, newest first
func (r *ResultRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]abg.BloodGasResult, error) {
	query := `SELECT ` + resultColumns + ` FROM blood_gas_results ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// ListByBatch returns all results belonging to a batch
func (r *ResultRepositoryImpl) ListByBatch(ctx context.Context, batchID core.BatchID) ([]abg.BloodGasResult, error) {
	query := `SELECT ` + resultColumns + ` FROM blood_gas_results WHERE batch_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, batchID.String())
}

// Delete removes a result
func (r *ResultRepositoryImpl) Delete(ctx context.Context, id core.ResultID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blood_gas_results WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", id, core.ErrResultNotFound)
	}
	return nil
}

func (r *ResultRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]abg.BloodGasResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []abg.BloodGasResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (*abg.BloodGasResult, error) {
	var (
		result             abg.BloodGasResult
		id                 string
		batchID            *string
		createdAt          sql.NullTime
		interpretationJSON []byte
		paramsJSON         []byte
	)

	err := row.Scan(
		&id, &batchID, &createdAt,
		&result.PH, &result.PCO2, &result.PO2, &result.HCO3, &result.BaseExcess, &result.SaO2,
		&result.FiO2, &result.PFRatio, &result.AAGradient, &result.ExpectedAAGradient,
		&result.Sodium, &result.Potassium, &result.Chloride, &result.Glucose,
		&result.AnionGap, &result.CorrectedAnionGap, &result.DeltaGap,
		&result.Lactate, &result.Hemoglobin, &result.Albumin,
		&interpretationJSON, &paramsJSON,
	)
	if err != nil {
		return nil, err
	}

	result.ID = core.ResultID(id)
	if batchID != nil {
		result.BatchID = core.BatchID(*batchID)
	}
	if createdAt.Valid {
		result.CreatedAt = core.NewTimestamp(createdAt.Time)
	}
	if len(interpretationJSON) > 0 {
		if err := json.Unmarshal(interpretationJSON, &result.Interpretation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interpretation: %w", err)
		}
	}
	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &result.Params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generation_params: %w", err)
		}
	}
	return &result, nil
}
