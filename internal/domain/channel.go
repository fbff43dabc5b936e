package domain

import (
	"github.com/simwire/simwire/internal/regkey"
	"github.com/simwire/simwire/internal/register"
)

// ChannelClassName is the class constant Channel instances are registered under.
const ChannelClassName = "Channel"

// Channel carries flow between storages, losing a fixed fraction in transit.
type Channel struct {
	name string

	Capacity   float64
	LossFactor float64
	Flow       float64

	Target *Storage
}

// NewChannel constructs an unconfigured channel with the given instance name.
func NewChannel(name string) *Channel {
	return &Channel{name: name}
}

func (c *Channel) ClassName() string { return ChannelClassName }
func (c *Channel) Name() string      { return c.name }

func (c *Channel) Register(r *register.Registry) error {
	if err := register.RegisterMemberWithDefault(r, c, "Capacity", &c.Capacity, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, c, "LossFactor", &c.LossFactor, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMember(r, c, "Target", &c.Target); err != nil {
		return err
	}

	register.Set(r, regkey.Function(c.name+"_flow"), c.ReadFlow)
	return nil
}

// ReadFlow is the bookkeeping accessor for the current flow.
func (c *Channel) ReadFlow() float64 { return c.Flow }

// Delivered returns the flow arriving at the far end after losses.
func (c *Channel) Delivered() float64 {
	return c.Flow * (1 - c.LossFactor)
}
