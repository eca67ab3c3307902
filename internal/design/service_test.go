package design

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/tmdlab/internal/dynamics"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// MockDesignRepository implements repository.DesignRepository for testing
type MockDesignRepository struct {
	mock.Mock
}

func (m *MockDesignRepository) Create(ctx context.Context, design *models.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Design), args.Error(1)
}

func (m *MockDesignRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*models.Design, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]*models.Design), args.Error(1)
}

func (m *MockDesignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	args := m.Called(ctx, id, status, progress)
	return args.Error(0)
}

func (m *MockDesignRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

func (m *MockDesignRepository) StoreResult(ctx context.Context, result *models.DesignResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockDesignRepository) GetResult(ctx context.Context, designID uuid.UUID) (*models.DesignResult, error) {
	args := m.Called(ctx, designID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DesignResult), args.Error(1)
}

func TestRunDesignStoresOptimizedResult(t *testing.T) {
	repo := new(MockDesignRepository)
	svc := NewDesignService(repo)

	designID := uuid.New()
	repo.On("UpdateStatus", mock.Anything, designID, "processing", mock.AnythingOfType("int")).Return(nil)
	repo.On("GetByID", mock.Anything, designID).Return(&models.Design{
		ID:             designID.String(),
		SessionID:      "test-session-123",
		MassRatio:      0.05,
		PrimaryDamping: 0.05,
		Status:         "processing",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil)

	var stored *models.DesignResult
	repo.On("StoreResult", mock.Anything, mock.AnythingOfType("*models.DesignResult")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.DesignResult)
		}).Return(nil)
	repo.On("UpdateStatus", mock.Anything, designID, "completed", 100).Return(nil)

	err := svc.RunDesign(context.Background(), designID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The stored result must agree with a direct run of the optimizer.
	want := dynamics.Optimize(0.05, 0.05)
	assert.Equal(t, designID.String(), stored.DesignID)
	assert.Equal(t, want.TuningRatio, stored.TuningRatio)
	assert.Equal(t, want.AbsorberDamping, stored.AbsorberDamping)
	assert.Equal(t, want.PeakAmplitude, stored.PeakAmplitude)
	assert.Equal(t, want.Iterations, stored.Iterations)
	assert.Equal(t, want.Converged, stored.Converged)

	refTuning, refDamping := dynamics.DenHartog(0.05)
	assert.Equal(t, refTuning, stored.ReferenceTuningRatio)
	assert.Equal(t, refDamping, stored.ReferenceAbsorberDamping)

	// Bare primary at 5% damping peaks near 1/(2*0.05) = 10, and the
	// absorber must cut that substantially.
	assert.InDelta(t, 10.0, stored.BarePeakAmplitude, 0.01)
	assert.Greater(t, stored.ReductionPercent, 50.0)
	assert.Less(t, stored.ReductionPercent, 100.0)

	repo.AssertCalled(t, "UpdateStatus", mock.Anything, designID, "completed", 100)
}

func TestRunDesignBuildsFiveCurves(t *testing.T) {
	repo := new(MockDesignRepository)
	svc := NewDesignService(repo)

	designID := uuid.New()
	repo.On("UpdateStatus", mock.Anything, designID, mock.AnythingOfType("string"), mock.AnythingOfType("int")).Return(nil)
	repo.On("GetByID", mock.Anything, designID).Return(&models.Design{
		ID:             designID.String(),
		MassRatio:      0.1,
		PrimaryDamping: 0.02,
	}, nil)

	var stored *models.DesignResult
	repo.On("StoreResult", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.DesignResult)
		}).Return(nil)

	require.NoError(t, svc.RunDesign(context.Background(), designID))
	require.NotNil(t, stored)
	require.Len(t, stored.Curves, 5)

	labels := make([]string, 0, len(stored.Curves))
	for _, c := range stored.Curves {
		labels = append(labels, c.Label)
		assert.Len(t, c.Points, 301)
		assert.Equal(t, dynamics.ScanLow, c.Points[0].ExcitationRatio)
		assert.Equal(t, dynamics.ScanHigh, c.Points[len(c.Points)-1].ExcitationRatio)
	}
	assert.Contains(t, labels, "bare primary")
	assert.Contains(t, labels, "optimized")
	assert.Contains(t, labels, "den hartog")
	assert.Contains(t, labels, "tuning -10%")
	assert.Contains(t, labels, "tuning +10%")
}

func TestRunDesignMarksOutOfDomainFailed(t *testing.T) {
	repo := new(MockDesignRepository)
	svc := NewDesignService(repo)

	designID := uuid.New()
	repo.On("UpdateStatus", mock.Anything, designID, "processing", 10).Return(nil)
	repo.On("GetByID", mock.Anything, designID).Return(&models.Design{
		ID:             designID.String(),
		MassRatio:      -0.1,
		PrimaryDamping: 0.05,
	}, nil)
	repo.On("UpdateError", mock.Anything, designID, mock.AnythingOfType("string")).Return(nil)

	err := svc.RunDesign(context.Background(), designID)
	assert.NoError(t, err)
	repo.AssertCalled(t, "UpdateError", mock.Anything, designID, mock.AnythingOfType("string"))
	repo.AssertNotCalled(t, "StoreResult", mock.Anything, mock.Anything)
}

func TestRunDesignPropagatesRepositoryError(t *testing.T) {
	repo := new(MockDesignRepository)
	svc := NewDesignService(repo)

	designID := uuid.New()
	repo.On("UpdateStatus", mock.Anything, designID, "processing", 10).Return(nil)
	repo.On("GetByID", mock.Anything, designID).Return(nil, errors.New("not found"))

	err := svc.RunDesign(context.Background(), designID)
	assert.Error(t, err)
}
