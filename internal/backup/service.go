package backup

import (
	"context"
	"path/filepath"
	"strconv"
	"time"
)

// Service periodically writes a zip file containing
// a snapshot of the database to the output directory.
type Service struct {
	// Injected fields
	backupPeriod time.Duration
	database     Snapshotter
	databaseName string
	outputDir    string
	logger       Logger
	timeNow      func() time.Time

	// Internal fields
	stopCh chan<- struct{}
	done   <-chan struct{}
}

func New(backupPeriod time.Duration, database Snapshotter, databaseName,
	outputDir string, logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		backupPeriod: backupPeriod,
		database:     database,
		databaseName: databaseName,
		outputDir:    outputDir,
		logger:       logger,
		timeNow:      timeNow,
	}
}

func (s *Service) String() string {
	return "backup"
}

func makeZipFileName(now time.Time) string {
	return "ddns-scheduler-backup-" + strconv.FormatInt(now.UnixNano(), 10) + ".zip"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, runErrorCh, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return runErrorCh, nil
}

func (s *Service) run(ready chan<- struct{}, runError chan<- error,
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	if s.backupPeriod == 0 {
		close(ready)
		s.logger.Info("disabled")
		return
	}

	s.logger.Info("each " + s.backupPeriod.String() +
		"; writing zip files to directory " + s.outputDir)
	timer := time.NewTimer(s.backupPeriod)
	close(ready)

	for {
		select {
		case <-timer.C:
		case <-stopCh:
			_ = timer.Stop()
			return
		}
		err := s.backup()
		if err != nil {
			runError <- err
			return
		}
		timer.Reset(s.backupPeriod)
	}
}

func (s *Service) backup() (err error) {
	outputPath := filepath.Join(s.outputDir, makeZipFileName(s.timeNow()))
	err = zipSnapshot(outputPath, s.databaseName, s.database)
	if err != nil {
		return err
	}
	s.logger.Info("database backed up to " + outputPath)
	return nil
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}
