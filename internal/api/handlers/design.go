package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/mhartwell/tmdlab/internal/chart"
	"github.com/mhartwell/tmdlab/internal/design"
	"github.com/mhartwell/tmdlab/internal/repository"
	"github.com/mhartwell/tmdlab/internal/storage"
	"github.com/mhartwell/tmdlab/pkg/models"
	"github.com/rs/zerolog/log"
)

// DesignHandler handles design-related HTTP requests
type DesignHandler struct {
	repo      repository.DesignRepository
	designSvc design.DesignService
	sweepSvc  design.SweepService
	reports   storage.ReportStore
}

// NewDesignHandler creates a new design handler. reports may be nil when no
// object store is configured; export requests then return 503.
func NewDesignHandler(repo repository.DesignRepository, designSvc design.DesignService, sweepSvc design.SweepService, reports storage.ReportStore) *DesignHandler {
	return &DesignHandler{
		repo:      repo,
		designSvc: designSvc,
		sweepSvc:  sweepSvc,
		reports:   reports,
	}
}

// CreateDesign creates a new design and starts the optimization
func (h *DesignHandler) CreateDesign(ctx context.Context, req *models.CreateDesignRequest) (*models.CreateDesignResponse, error) {
	log.Info().Float64("massRatio", req.Body.MassRatio).Float64("primaryDamping", req.Body.PrimaryDamping).Msg("Creating new design")

	// The schema enforces the same bounds; the explicit checks keep the
	// core's documented domain guarded even if the schema changes.
	if req.Body.MassRatio <= 0 {
		return nil, huma.Error400BadRequest("Mass ratio must be positive.", nil)
	}
	if req.Body.PrimaryDamping < 0 || req.Body.PrimaryDamping >= 1 {
		return nil, huma.Error400BadRequest("Primary damping ratio must be in [0, 1).", nil)
	}

	designID := uuid.New()
	d := &models.Design{
		ID:             designID.String(),
		SessionID:      req.Body.SessionID,
		MassRatio:      req.Body.MassRatio,
		PrimaryDamping: req.Body.PrimaryDamping,
		Status:         "pending",
		Progress:       0,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.repo.Create(ctx, d); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create design", err)
	}
	log.Info().Str("designID", d.ID).Str("sessionID", d.SessionID).Msg("Design record created")

	// Run the optimization in the background; clients poll the status
	// endpoint. Each run is milliseconds of pure computation, but keeping
	// the create call non-blocking matches the polling contract.
	go func() {
		if err := h.designSvc.RunDesign(context.Background(), designID); err != nil {
			h.repo.UpdateError(context.Background(), designID, fmt.Sprintf("Optimization failed: %v", err))
		}
	}()

	return &models.CreateDesignResponse{
		Body: models.CreateDesignResponseBody{
			ID:     d.ID,
			Status: d.Status,
		},
	}, nil
}

// GetDesignStatus returns the current status of a design
func (h *DesignHandler) GetDesignStatus(ctx context.Context, req *models.GetDesignStatusRequest) (*models.GetDesignStatusResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	d, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	return &models.GetDesignStatusResponse{
		Body: models.GetDesignStatusResponseBody{
			ID:       d.ID,
			Status:   d.Status,
			Progress: d.Progress,
			Message:  h.generateStatusMessage(d.Status, d.Progress),
		},
	}, nil
}

// GetDesignResults returns the optimization results for a design
func (h *DesignHandler) GetDesignResults(ctx context.Context, req *models.GetDesignResultsRequest) (*models.GetDesignResultsResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	d, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	if d.Status != "completed" {
		return nil, huma.Error409Conflict("Design not yet completed",
			fmt.Errorf("design status is %s", d.Status))
	}

	result, err := h.repo.GetResult(ctx, designID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get results", err)
	}

	return &models.GetDesignResultsResponse{
		Body: models.GetDesignResultsResponseBody{
			ID:                       d.ID,
			MassRatio:                d.MassRatio,
			PrimaryDamping:           d.PrimaryDamping,
			TuningRatio:              result.TuningRatio,
			AbsorberDamping:          result.AbsorberDamping,
			PeakAmplitude:            result.PeakAmplitude,
			ReferenceTuningRatio:     result.ReferenceTuningRatio,
			ReferenceAbsorberDamping: result.ReferenceAbsorberDamping,
			BarePeakAmplitude:        result.BarePeakAmplitude,
			ReductionPercent:         result.ReductionPercent,
			Iterations:               result.Iterations,
			Converged:                result.Converged,
			CreatedAt:                result.CreatedAt,
		},
	}, nil
}

// GetDesignCurves returns the sampled response curves for display
func (h *DesignHandler) GetDesignCurves(ctx context.Context, req *models.GetDesignCurvesRequest) (*models.GetDesignCurvesResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	d, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	if d.Status != "completed" {
		return nil, huma.Error409Conflict("Design not yet completed",
			fmt.Errorf("design status is %s", d.Status))
	}

	result, err := h.repo.GetResult(ctx, designID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get curves", err)
	}

	return &models.GetDesignCurvesResponse{
		Body: models.GetDesignCurvesResponseBody{
			ID:     d.ID,
			Curves: result.Curves,
		},
	}, nil
}

// ExportDesign renders the design report and returns a download URL
func (h *DesignHandler) ExportDesign(ctx context.Context, req *models.ExportDesignRequest) (*models.ExportDesignResponse, error) {
	if h.reports == nil {
		return nil, huma.Error503ServiceUnavailable("Report export is not configured", nil)
	}

	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	d, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	if d.Status != "completed" {
		return nil, huma.Error409Conflict("Design not yet completed",
			fmt.Errorf("design status is %s", d.Status))
	}

	result, err := h.repo.GetResult(ctx, designID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get results", err)
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("Absorber design %s (mass ratio %.3f)", d.ID, d.MassRatio)
	if err := chart.RenderCurves(&buf, title, result.Curves); err != nil {
		return nil, huma.Error500InternalServerError("Failed to render report", err)
	}

	key := fmt.Sprintf("reports/%s.html", d.ID)
	if err := h.reports.Upload(ctx, key, "text/html", buf.Bytes()); err != nil {
		return nil, huma.Error500InternalServerError("Failed to upload report", err)
	}

	downloadURL, err := h.reports.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate download URL", err)
	}

	log.Info().Str("designID", d.ID).Str("key", key).Msg("Report exported")
	return &models.ExportDesignResponse{
		Body: models.ExportDesignResponseBody{
			DownloadURL: downloadURL,
			ExpiresIn:   int((24 * time.Hour).Seconds()),
		},
	}, nil
}

// Sweep optimizes a batch of mass ratios synchronously
func (h *DesignHandler) Sweep(ctx context.Context, req *models.SweepRequest) (*models.SweepResponse, error) {
	if req.Body.PrimaryDamping < 0 || req.Body.PrimaryDamping >= 1 {
		return nil, huma.Error400BadRequest("Primary damping ratio must be in [0, 1).", nil)
	}
	for _, mu := range req.Body.MassRatios {
		if mu <= 0 || mu > 1 {
			return nil, huma.Error400BadRequest(fmt.Sprintf("Mass ratio %g out of range (0, 1].", mu), nil)
		}
	}

	log.Info().Int("count", len(req.Body.MassRatios)).Float64("primaryDamping", req.Body.PrimaryDamping).Msg("Running mass-ratio sweep")
	points := h.sweepSvc.Run(ctx, req.Body.MassRatios, req.Body.PrimaryDamping)

	return &models.SweepResponse{
		Body: models.SweepResponseBody{Points: points},
	}, nil
}

// generateStatusMessage returns a human-readable message for a status
func (h *DesignHandler) generateStatusMessage(status string, progress int) string {
	switch status {
	case "pending":
		return "Design queued for optimization"
	case "processing":
		switch {
		case progress < 30:
			return "Preparing optimization"
		case progress < 60:
			return "Minimizing worst-case response"
		case progress < 100:
			return "Sampling response curves"
		default:
			return "Finishing up"
		}
	case "completed":
		return "Design complete"
	case "failed":
		return "Design failed"
	default:
		return ""
	}
}
