package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Scheduler struct {
	// DriftCheck resolves the domain of a task when its public IP
	// address did not change, and only skips the record update if
	// the domain resolves to that IP address.
	DriftCheck *bool
}

func (s *Scheduler) setDefaults() {
	s.DriftCheck = gosettings.DefaultPointer(s.DriftCheck, true)
}

func (s Scheduler) Validate() (err error) {
	return nil
}

func (s Scheduler) String() string {
	return s.toLinesNode().String()
}

func (s Scheduler) toLinesNode() *gotree.Node {
	node := gotree.New("Scheduler")
	node.Appendf("DNS drift check: %s", gosettings.BoolToYesNo(s.DriftCheck))
	return node
}

func (s *Scheduler) read(reader *reader.Reader) (err error) {
	s.DriftCheck, err = reader.BoolPtr("SCHEDULER_DRIFT_CHECK")
	return err
}
