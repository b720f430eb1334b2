package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client    Client
	Probe     Probe
	Resolver  Resolver
	Scheduler Scheduler
	Server    Server
	Health    Health
	Paths     Paths
	Backup    Backup
	Logger    Logger
	Shoutrrr  Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Probe.setDefaults()
	c.Resolver.setDefaults()
	c.Scheduler.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Paths.setDefaults()
	c.Backup.setDefaults(*c.Paths.DataDir)
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"probe":     &c.Probe,
		"resolver":  &c.Resolver,
		"scheduler": &c.Scheduler,
		"server":    &c.Server,
		"health":    &c.Health,
		"paths":     &c.Paths,
		"backup":    &c.Backup,
		"logger":    &c.Logger,
		"shoutrrr":  &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Probe.toLinesNode())
	node.AppendNode(c.Resolver.toLinesNode())
	node.AppendNode(c.Scheduler.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Probe.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading probe settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Scheduler.read(reader)
	if err != nil {
		return fmt.Errorf("reading scheduler settings: %w", err)
	}

	err = c.Server.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Paths.read(reader)
	if err != nil {
		return fmt.Errorf("reading paths settings: %w", err)
	}

	err = c.Backup.read(reader)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
