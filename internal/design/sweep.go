package design

import (
	"context"
	"sync"

	"github.com/mhartwell/tmdlab/internal/dynamics"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// SweepService optimizes a batch of mass ratios. Each Optimize call is an
// independent pure computation, so the batch fans out over a fixed pool of
// workers with no synchronization beyond collecting results.
type SweepService interface {
	Run(ctx context.Context, massRatios []float64, primaryDamping float64) []models.SweepPoint
}

type sweepService struct {
	workers int
}

func NewSweepService(workers int) SweepService {
	if workers < 1 {
		workers = 1
	}
	return &sweepService{workers: workers}
}

// Run returns the optimal design per mass ratio, in request order. A
// cancelled context stops feeding workers; slots for unprocessed ratios are
// returned zero-valued.
func (s *sweepService) Run(ctx context.Context, massRatios []float64, primaryDamping float64) []models.SweepPoint {
	points := make([]models.SweepPoint, len(massRatios))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				mu := massRatios[i]
				res := dynamics.Optimize(mu, primaryDamping)
				points[i] = models.SweepPoint{
					MassRatio:       mu,
					TuningRatio:     res.TuningRatio,
					AbsorberDamping: res.AbsorberDamping,
					PeakAmplitude:   res.PeakAmplitude,
				}
			}
		}()
	}

	for i := range massRatios {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return points
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return points
}
