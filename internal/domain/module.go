package domain

import "github.com/simwire/simwire/internal/factory"

// Module registers a maker for every built-in model class.
type Module struct{}

func (Module) Register(f *factory.Factory) {
	f.AddMaker(StorageClassName, factory.NewMaker(NewStorage))
	f.AddMaker(ChannelClassName, factory.NewMaker(NewChannel))
	f.AddMakerWithBase(PowerStationClassName, factory.NewMaker(NewPowerStation), "Generator")
}
