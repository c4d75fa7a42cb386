package types

// GenesisState holds the exchange module's genesis state. Config is nil on a
// fresh chain; the exchange is then created through Instantiate.
type GenesisState struct {
	Config *Config `json:"config,omitempty"`
}

// DefaultGenesis returns the module's default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.Config == nil {
		return nil
	}
	return gs.Config.Validate()
}
