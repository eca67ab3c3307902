package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mhartwell/tmdlab/internal/repository"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// PostgresDesignRepository implements DesignRepository for PostgreSQL
type PostgresDesignRepository struct {
	db *sql.DB
}

// NewPostgresDesignRepository creates a new PostgreSQL design repository
func NewPostgresDesignRepository(db *sql.DB) repository.DesignRepository {
	return &PostgresDesignRepository{db: db}
}

// Create inserts a new design record
func (r *PostgresDesignRepository) Create(ctx context.Context, design *models.Design) error {
	query := `
		INSERT INTO designs (id, session_id, mass_ratio, primary_damping, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		design.ID,
		design.SessionID,
		design.MassRatio,
		design.PrimaryDamping,
		design.Status,
		design.Progress,
		design.CreatedAt,
		design.UpdatedAt)

	return err
}

// GetByID retrieves a design by ID
func (r *PostgresDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	query := `
		SELECT id, session_id, mass_ratio, primary_damping, status, progress, error_message, created_at, updated_at, completed_at
		FROM designs
		WHERE id = $1`

	var design models.Design
	var errorMsg sql.NullString
	var completedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&design.ID,
		&design.SessionID,
		&design.MassRatio,
		&design.PrimaryDamping,
		&design.Status,
		&design.Progress,
		&errorMsg,
		&design.CreatedAt,
		&design.UpdatedAt,
		&completedAt)

	if err != nil {
		return nil, err
	}

	if errorMsg.Valid {
		design.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		design.CompletedAt = &completedAt.Time
	}

	return &design, nil
}

// GetBySessionID retrieves designs by session ID
func (r *PostgresDesignRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*models.Design, error) {
	query := `
		SELECT id, session_id, mass_ratio, primary_damping, status, progress, error_message, created_at, updated_at, completed_at
		FROM designs
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*models.Design
	for rows.Next() {
		var design models.Design
		var errorMsg sql.NullString
		var completedAt sql.NullTime

		err := rows.Scan(
			&design.ID,
			&design.SessionID,
			&design.MassRatio,
			&design.PrimaryDamping,
			&design.Status,
			&design.Progress,
			&errorMsg,
			&design.CreatedAt,
			&design.UpdatedAt,
			&completedAt)

		if err != nil {
			return nil, err
		}

		if errorMsg.Valid {
			design.ErrorMsg = &errorMsg.String
		}
		if completedAt.Valid {
			design.CompletedAt = &completedAt.Time
		}

		designs = append(designs, &design)
	}

	return designs, rows.Err()
}

// UpdateStatus updates the status and progress of a design
func (r *PostgresDesignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE designs
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, progress, id)
	return err
}

// UpdateError updates the error message for a design
func (r *PostgresDesignRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE designs
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, errorMsg, id)
	return err
}

// StoreResult stores an optimization result
func (r *PostgresDesignRepository) StoreResult(ctx context.Context, result *models.DesignResult) error {
	curves, err := json.Marshal(result.Curves)
	if err != nil {
		return fmt.Errorf("failed to marshal curves: %w", err)
	}

	query := `
		INSERT INTO design_results (id, design_id, tuning_ratio, absorber_damping, peak_amplitude,
			reference_tuning_ratio, reference_absorber_damping, bare_peak_amplitude, reduction_percent,
			iterations, converged, curves, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		result.ID,
		result.DesignID,
		result.TuningRatio,
		result.AbsorberDamping,
		result.PeakAmplitude,
		result.ReferenceTuningRatio,
		result.ReferenceAbsorberDamping,
		result.BarePeakAmplitude,
		result.ReductionPercent,
		result.Iterations,
		result.Converged,
		string(curves),
		result.CreatedAt)

	return err
}

// GetResult retrieves the optimization result for a design
func (r *PostgresDesignRepository) GetResult(ctx context.Context, designID uuid.UUID) (*models.DesignResult, error) {
	query := `
		SELECT id, design_id, tuning_ratio, absorber_damping, peak_amplitude,
			reference_tuning_ratio, reference_absorber_damping, bare_peak_amplitude, reduction_percent,
			iterations, converged, curves, created_at
		FROM design_results
		WHERE design_id = $1`

	var result models.DesignResult
	var curvesStr sql.NullString

	err := r.db.QueryRowContext(ctx, query, designID).Scan(
		&result.ID,
		&result.DesignID,
		&result.TuningRatio,
		&result.AbsorberDamping,
		&result.PeakAmplitude,
		&result.ReferenceTuningRatio,
		&result.ReferenceAbsorberDamping,
		&result.BarePeakAmplitude,
		&result.ReductionPercent,
		&result.Iterations,
		&result.Converged,
		&curvesStr,
		&result.CreatedAt)

	if err != nil {
		return nil, err
	}

	if curvesStr.Valid && curvesStr.String != "" {
		var curves []models.ResponseCurve
		if err := json.Unmarshal([]byte(curvesStr.String), &curves); err != nil {
			return nil, fmt.Errorf("failed to unmarshal curves: %w", err)
		}
		result.Curves = curves
	}

	return &result, nil
}
