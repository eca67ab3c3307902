package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/mhartwell/tmdlab/internal/api/handlers"
	"github.com/mhartwell/tmdlab/internal/design"
	"github.com/mhartwell/tmdlab/internal/repository"
	"github.com/mhartwell/tmdlab/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, designRepo repository.DesignRepository, designSvc design.DesignService, sweepSvc design.SweepService, reports storage.ReportStore) {
	// Initialize handlers
	designHandler := handlers.NewDesignHandler(designRepo, designSvc, sweepSvc, reports)

	// Register design routes
	huma.Register(api, huma.Operation{
		OperationID: "createDesign",
		Method:      http.MethodPost,
		Path:        "/api/designs",
		Summary:     "Create a new design",
		Description: "Creates a new absorber design and starts the optimization",
		Tags:        []string{"Design"},
	}, designHandler.CreateDesign)

	huma.Register(api, huma.Operation{
		OperationID: "getDesignStatus",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}/status",
		Summary:     "Get design status",
		Description: "Returns the current status and progress of a design",
		Tags:        []string{"Design"},
	}, designHandler.GetDesignStatus)

	huma.Register(api, huma.Operation{
		OperationID: "getDesignResults",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}/results",
		Summary:     "Get design results",
		Description: "Returns the optimal tuning, the Den Hartog reference and the peak reduction",
		Tags:        []string{"Design"},
	}, designHandler.GetDesignResults)

	huma.Register(api, huma.Operation{
		OperationID: "getDesignCurves",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}/curves",
		Summary:     "Get design response curves",
		Description: "Returns the sampled amplification curves for display",
		Tags:        []string{"Design"},
	}, designHandler.GetDesignCurves)

	huma.Register(api, huma.Operation{
		OperationID: "exportDesign",
		Method:      http.MethodPost,
		Path:        "/api/designs/{id}/export",
		Summary:     "Export design report",
		Description: "Renders the design report and returns a pre-signed download URL",
		Tags:        []string{"Design"},
	}, designHandler.ExportDesign)

	huma.Register(api, huma.Operation{
		OperationID: "sweepDesigns",
		Method:      http.MethodPost,
		Path:        "/api/sweeps",
		Summary:     "Sweep mass ratios",
		Description: "Optimizes each requested mass ratio and returns the optima",
		Tags:        []string{"Sweep"},
	}, designHandler.Sweep)
}
