package domain

import (
	"github.com/simwire/simwire/internal/regkey"
	"github.com/simwire/simwire/internal/register"
	"github.com/simwire/simwire/internal/simtime"
)

// StorageClassName is the class constant Storage instances are registered under.
const StorageClassName = "Storage"

// Storage is a reservoir: it holds a volume of water between an empty level
// and a full supply level, spills through one channel and is fed by others.
type Storage struct {
	name string

	// EOL is the empty operating level; FSL the full supply level.
	EOL    float64
	FSL    float64
	Volume float64
	Active bool

	Commissioned simtime.Time

	Spill   *Channel
	Sources []*Channel

	initialised simtime.Time
}

// NewStorage constructs an unconfigured storage with the given instance name.
func NewStorage(name string) *Storage {
	return &Storage{name: name}
}

func (s *Storage) ClassName() string { return StorageClassName }
func (s *Storage) Name() string      { return s.name }

// Register exposes the storage's member fields, its volume accessor and its
// Initialise hook.
func (s *Storage) Register(r *register.Registry) error {
	if err := register.RegisterMemberWithDefault(r, s, "EOL", &s.EOL, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, s, "FSL", &s.FSL, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, s, "Volume", &s.Volume, "0.0"); err != nil {
		return err
	}
	if err := register.RegisterMemberWithDefault(r, s, "Active", &s.Active, "yes"); err != nil {
		return err
	}
	if err := register.RegisterMember(r, s, "Commissioned", &s.Commissioned); err != nil {
		return err
	}
	if err := register.RegisterMember(r, s, "Spill", &s.Spill); err != nil {
		return err
	}
	if err := register.RegisterMember(r, s, "Sources", &s.Sources); err != nil {
		return err
	}

	register.Set(r, regkey.Function(s.name+"_volume"), s.ReadVolume)
	r.AddTimeCallback("Initialise", s.Initialise)
	return nil
}

// ReadVolume is the bookkeeping accessor for the stored volume.
func (s *Storage) ReadVolume() float64 { return s.Volume }

// Initialise records the simulation start time.
func (s *Storage) Initialise(t simtime.Time) {
	s.initialised = t
}

// InitialisedAt returns the time passed to the last Initialise dispatch.
func (s *Storage) InitialisedAt() simtime.Time { return s.initialised }
