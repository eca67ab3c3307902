package design

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhartwell/tmdlab/internal/dynamics"
	"github.com/mhartwell/tmdlab/internal/repository"
	"github.com/mhartwell/tmdlab/pkg/models"
	"github.com/rs/zerolog/log"
)

// DesignService runs the absorber optimization for a stored design and
// persists the outcome.
type DesignService interface {
	RunDesign(ctx context.Context, designID uuid.UUID) error
}

type designService struct {
	repository repository.DesignRepository
}

func NewDesignService(repo repository.DesignRepository) DesignService {
	return &designService{repository: repo}
}

func (s *designService) RunDesign(ctx context.Context, designID uuid.UUID) error {
	// Step 1: Update to processing status
	if err := s.repository.UpdateStatus(ctx, designID, "processing", 10); err != nil {
		return err
	}

	// Step 2: Get design parameters
	design, err := s.repository.GetByID(ctx, designID)
	if err != nil {
		return err
	}

	// The API boundary validates the domain; a record that slipped past it
	// is marked failed rather than fed to the solver.
	if design.MassRatio <= 0 || design.PrimaryDamping < 0 || design.PrimaryDamping >= 1 {
		s.repository.UpdateError(ctx, designID,
			fmt.Sprintf("Parameters out of domain: mass_ratio=%g primary_damping=%g",
				design.MassRatio, design.PrimaryDamping))
		return nil // Don't return error, status is updated to failed
	}

	// Step 3: Minimize the worst-case response
	if err := s.repository.UpdateStatus(ctx, designID, "processing", 30); err != nil {
		return err
	}

	opt := dynamics.Optimize(design.MassRatio, design.PrimaryDamping)
	log.Info().
		Str("designID", designID.String()).
		Float64("tuningRatio", opt.TuningRatio).
		Float64("absorberDamping", opt.AbsorberDamping).
		Float64("peakAmplitude", opt.PeakAmplitude).
		Int("iterations", opt.Iterations).
		Bool("converged", opt.Converged).
		Msg("Optimization finished")

	// Step 4: Baseline and reference designs for comparison
	if err := s.repository.UpdateStatus(ctx, designID, "processing", 60); err != nil {
		return err
	}

	barePeak := barePeakAmplitude(design.PrimaryDamping)
	refTuning, refDamping := dynamics.DenHartog(design.MassRatio)

	reduction := 0.0
	if barePeak > 0 {
		reduction = (1 - opt.PeakAmplitude/barePeak) * 100
	}

	// Step 5: Sample display curves
	if err := s.repository.UpdateStatus(ctx, designID, "processing", 80); err != nil {
		return err
	}

	curves := BuildCurves(design.MassRatio, design.PrimaryDamping, opt)

	// Step 6: Store result
	result := &models.DesignResult{
		ID:                       uuid.New().String(),
		DesignID:                 design.ID,
		TuningRatio:              opt.TuningRatio,
		AbsorberDamping:          opt.AbsorberDamping,
		PeakAmplitude:            opt.PeakAmplitude,
		ReferenceTuningRatio:     refTuning,
		ReferenceAbsorberDamping: refDamping,
		BarePeakAmplitude:        barePeak,
		ReductionPercent:         reduction,
		Iterations:               opt.Iterations,
		Converged:                opt.Converged,
		Curves:                   curves,
		CreatedAt:                time.Now(),
	}

	if err := s.repository.StoreResult(ctx, result); err != nil {
		return err
	}

	// Step 7: Mark complete
	if err := s.repository.UpdateStatus(ctx, designID, "completed", 100); err != nil {
		return err
	}

	return nil
}

// barePeakAmplitude is the worst-case amplification of the primary system
// alone, scanned over the same excitation band as the optimizer objective.
func barePeakAmplitude(zeta1 float64) float64 {
	peak := 0.0
	for i := 0; i < dynamics.ScanSamples; i++ {
		if a := dynamics.WithoutAbsorber(dynamics.ScanRatio(i), zeta1); a > peak {
			peak = a
		}
	}
	return peak
}
