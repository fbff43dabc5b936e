package domain

import (
	"github.com/simwire/simwire/internal/regkey"
	"github.com/simwire/simwire/internal/register"
	"github.com/simwire/simwire/internal/simtime"
)

// PowerStationClassName is the class constant PowerStation instances are
// registered under.
const PowerStationClassName = "PowerStation"

// PowerStation converts the flow arriving through its inflow channel into
// generated energy.
type PowerStation struct {
	name string

	Efficiency float64
	MaxFlow    float64
	Online     bool

	Commissioned simtime.Time

	Inflow *Channel
}

// NewPowerStation constructs an unconfigured power station with the given
// instance name.
func NewPowerStation(name string) *PowerStation {
	return &PowerStation{name: name}
}

func (p *PowerStation) ClassName() string { return PowerStationClassName }
func (p *PowerStation) Name() string      { return p.name }

func (p *PowerStation) Register(r *register.Registry) error {
	if err := register.RegisterMemberWithDefault(r, p, "Efficiency", &p.Efficiency, "0.85"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, p, "MaxFlow", &p.MaxFlow, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, p, "Online", &p.Online, "yes"); err != nil {
		return err
	}
	if err := register.RegisterMember(r, p, "Commissioned", &p.Commissioned); err != nil {
		return err
	}
	if err := register.RegisterMember(r, p, "Inflow", &p.Inflow); err != nil {
		return err
	}

	register.Set(r, regkey.Function(p.name+"_generation"), p.ReadGeneration)
	return nil
}

// ReadGeneration is the bookkeeping accessor for the station's output, zero
// while offline or unconnected.
func (p *PowerStation) ReadGeneration() float64 {
	if !p.Online || p.Inflow == nil {
		return 0
	}
	flow := p.Inflow.Delivered()
	if p.MaxFlow > 0 && flow > p.MaxFlow {
		flow = p.MaxFlow
	}
	return flow * p.Efficiency
}
