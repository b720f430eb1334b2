package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	DataDir *string
	// Umask is applied to the process when set.
	Umask *fs.FileMode
}

func (p *Paths) setDefaults() {
	p.DataDir = gosettings.DefaultPointer(p.DataDir, "./data")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Data directory: %s", *p.DataDir)
	if p.Umask != nil {
		node.Appendf("Umask: %04o", uint32(*p.Umask))
	}
	return node
}

func (p *Paths) read(r *reader.Reader) (err error) {
	p.DataDir = r.Get("DATADIR", reader.ForceLowercase(false))
	if p.DataDir != nil {
		cleaned := filepath.Clean(*p.DataDir)
		p.DataDir = &cleaned
	}

	umaskString := r.String("UMASK")
	if umaskString != "" {
		umask, err := parseUmask(umaskString)
		if err != nil {
			return fmt.Errorf("environment variable UMASK: %w", err)
		}
		p.Umask = &umask
	}
	return nil
}

func parseUmask(s string) (umask fs.FileMode, err error) {
	const base, bitSize = 8, 32
	umaskUint64, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(umaskUint64), nil
}
