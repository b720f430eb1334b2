package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Backup struct {
	Period    *time.Duration
	Directory *string
}

func (b *Backup) setDefaults(dataDir string) {
	b.Period = gosettings.DefaultPointer(b.Period, 0)
	b.Directory = gosettings.DefaultPointer(b.Directory, dataDir)
}

var ErrBackupPeriodTooLow = errors.New("backup period is too low")

func (b Backup) Validate() (err error) {
	const minPeriod = time.Minute
	if *b.Period != 0 && *b.Period < minPeriod {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrBackupPeriodTooLow, *b.Period, minPeriod)
	}
	return nil
}

func (b Backup) String() string {
	return b.toLinesNode().String()
}

func (b Backup) toLinesNode() *gotree.Node {
	if *b.Period == 0 {
		return gotree.New("Backup: disabled")
	}
	node := gotree.New("Backup")
	node.Appendf("Period: %s", *b.Period)
	node.Appendf("Directory: %s", *b.Directory)
	return node
}

func (b *Backup) read(r *reader.Reader) (err error) {
	b.Period, err = r.DurationPtr("BACKUP_PERIOD")
	if err != nil {
		return err
	}
	b.Directory = r.Get("BACKUP_DIRECTORY", reader.ForceLowercase(false))
	return nil
}
