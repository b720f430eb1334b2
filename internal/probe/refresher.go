package probe

import (
	"context"
	"strconv"
	"time"
)

// Refresher periodically refreshes all the probes of a pool.
type Refresher struct {
	// Injected fields
	pool   *Pool
	period time.Duration
	logger Logger

	// Internal fields
	stopCh chan<- struct{}
	done   <-chan struct{}
}

func NewRefresher(pool *Pool, period time.Duration, logger Logger) *Refresher {
	return &Refresher{
		pool:   pool,
		period: period,
		logger: logger,
	}
}

func (r *Refresher) String() string {
	return "probe refresher"
}

func (r *Refresher) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	r.stopCh = stopCh
	done := make(chan struct{})
	r.done = done
	go r.run(ready, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, r.Stop()
	}
	return runErrorCh, nil
}

func (r *Refresher) run(ready chan<- struct{}, stopCh <-chan struct{},
	done chan<- struct{}) {
	defer close(done)

	if r.period == 0 {
		close(ready)
		r.logger.Info("disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	r.logger.Info("refreshing " + strconv.Itoa(len(r.pool.List())) +
		" probes every " + r.period.String())
	close(ready)

	timer := time.NewTimer(0)
	for {
		select {
		case <-timer.C:
		case <-ctx.Done():
			_ = timer.Stop()
			return
		}
		r.refresh(ctx)
		timer.Reset(r.period)
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	results := r.pool.RefreshAll(ctx)
	if ctx.Err() != nil {
		return
	}
	succeeded := 0
	for _, result := range results {
		if result.Status == StatusSuccess {
			succeeded++
		}
	}
	message := strconv.Itoa(succeeded) + "/" + strconv.Itoa(len(results)) + " probes succeeded"
	if succeeded == 0 && len(results) > 0 {
		r.logger.Warn(message)
		return
	}
	r.logger.Debug(message)
}

func (r *Refresher) Stop() (err error) {
	close(r.stopCh)
	<-r.done
	return nil
}
