package models

import (
	"time"
)

// CreateDesignRequest represents a request to create a new absorber design
type CreateDesignRequest struct {
	Body struct {
		SessionID      string  `json:"session_id" minLength:"10" maxLength:"50" required:"true" doc:"Client session identifier"`
		MassRatio      float64 `json:"mass_ratio" exclusiveMinimum:"0" maximum:"1" required:"true" doc:"Absorber mass over primary mass"`
		PrimaryDamping float64 `json:"primary_damping" minimum:"0" exclusiveMaximum:"1" doc:"Primary structure damping ratio"`
	}
}

// CreateDesignResponseBody is the body of the create design response
type CreateDesignResponseBody struct {
	ID     string `json:"id" doc:"Design unique identifier"`
	Status string `json:"status" doc:"Initial design status"`
}

// CreateDesignResponse represents the response from creating a design
type CreateDesignResponse struct {
	Body CreateDesignResponseBody
}

// GetDesignStatusRequest represents a request to get design status
type GetDesignStatusRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// GetDesignStatusResponseBody is the body of the status response
type GetDesignStatusResponseBody struct {
	ID       string `json:"id" doc:"Design ID"`
	Status   string `json:"status" enum:"pending,processing,completed,failed" doc:"Design status"`
	Progress int    `json:"progress" minimum:"0" maximum:"100" doc:"Optimization progress percentage"`
	Message  string `json:"message,omitempty" doc:"Human-readable status message"`
}

// GetDesignStatusResponse represents the current status of a design
type GetDesignStatusResponse struct {
	Body GetDesignStatusResponseBody
}

// GetDesignResultsRequest represents a request to get design results
type GetDesignResultsRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// GetDesignResultsResponseBody is the body of the results response
type GetDesignResultsResponseBody struct {
	ID                       string    `json:"id" doc:"Design ID"`
	MassRatio                float64   `json:"mass_ratio" doc:"Absorber mass over primary mass"`
	PrimaryDamping           float64   `json:"primary_damping" doc:"Primary structure damping ratio"`
	TuningRatio              float64   `json:"tuning_ratio" doc:"Optimal absorber frequency ratio"`
	AbsorberDamping          float64   `json:"absorber_damping" doc:"Optimal absorber damping ratio"`
	PeakAmplitude            float64   `json:"peak_amplitude" doc:"Minimized worst-case amplification"`
	ReferenceTuningRatio     float64   `json:"reference_tuning_ratio" doc:"Den Hartog closed-form tuning ratio"`
	ReferenceAbsorberDamping float64   `json:"reference_absorber_damping" doc:"Den Hartog closed-form damping ratio"`
	BarePeakAmplitude        float64   `json:"bare_peak_amplitude" doc:"Worst-case amplification without the absorber"`
	ReductionPercent         float64   `json:"reduction_percent" doc:"Peak reduction versus the bare primary"`
	Iterations               int       `json:"iterations" doc:"Coordinate-descent iterations used"`
	Converged                bool      `json:"converged" doc:"Whether descent met the improvement tolerance"`
	CreatedAt                time.Time `json:"created_at" doc:"Result creation timestamp"`
}

// GetDesignResultsResponse represents the complete design results
type GetDesignResultsResponse struct {
	Body GetDesignResultsResponseBody
}

// GetDesignCurvesRequest represents a request for the display curves of a design
type GetDesignCurvesRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// GetDesignCurvesResponseBody is the body of the curves response
type GetDesignCurvesResponseBody struct {
	ID     string          `json:"id" doc:"Design ID"`
	Curves []ResponseCurve `json:"curves" doc:"Response curves for display"`
}

// GetDesignCurvesResponse carries the sampled response curves
type GetDesignCurvesResponse struct {
	Body GetDesignCurvesResponseBody
}

// ExportDesignRequest represents a request to export a design report
type ExportDesignRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// ExportDesignResponseBody is the body of the export response
type ExportDesignResponseBody struct {
	DownloadURL string `json:"download_url" doc:"Pre-signed URL for the rendered report"`
	ExpiresIn   int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// ExportDesignResponse represents the response from exporting a report
type ExportDesignResponse struct {
	Body ExportDesignResponseBody
}

// SweepRequest represents a request to optimize across several mass ratios
type SweepRequest struct {
	Body struct {
		MassRatios     []float64 `json:"mass_ratios" minItems:"1" maxItems:"200" required:"true" doc:"Mass ratios to optimize"`
		PrimaryDamping float64   `json:"primary_damping" minimum:"0" exclusiveMaximum:"1" doc:"Primary structure damping ratio"`
	}
}

// SweepResponseBody is the body of the sweep response
type SweepResponseBody struct {
	Points []SweepPoint `json:"points" doc:"Optimal design per requested mass ratio, in request order"`
}

// SweepResponse represents the response from a mass-ratio sweep
type SweepResponse struct {
	Body SweepResponseBody
}

// Design represents the core design entity (for internal use)
type Design struct {
	ID             string     `json:"id"`
	SessionID      string     `json:"session_id"`
	MassRatio      float64    `json:"mass_ratio"`
	PrimaryDamping float64    `json:"primary_damping"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	ErrorMsg       *string    `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// DesignResult represents the stored optimization result
type DesignResult struct {
	ID                       string          `json:"id"`
	DesignID                 string          `json:"design_id"`
	TuningRatio              float64         `json:"tuning_ratio"`
	AbsorberDamping          float64         `json:"absorber_damping"`
	PeakAmplitude            float64         `json:"peak_amplitude"`
	ReferenceTuningRatio     float64         `json:"reference_tuning_ratio"`
	ReferenceAbsorberDamping float64         `json:"reference_absorber_damping"`
	BarePeakAmplitude        float64         `json:"bare_peak_amplitude"`
	ReductionPercent         float64         `json:"reduction_percent"`
	Iterations               int             `json:"iterations"`
	Converged                bool            `json:"converged"`
	Curves                   []ResponseCurve `json:"curves,omitempty"`
	CreatedAt                time.Time       `json:"created_at"`
}
