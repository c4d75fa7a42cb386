package exchange

import (
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/productscience/bridge-exchange/x/exchange/keeper"
	"github.com/productscience/bridge-exchange/x/exchange/types"
)

// ConsensusVersion defines the current x/exchange module consensus version.
const ConsensusVersion = 1

var (
	_ module.AppModuleBasic = AppModule{}
	_ module.AppModule      = AppModule{}
	_ module.HasGenesis     = AppModule{}
)

type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(keeper keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

func (AppModule) Name() string {
	return types.ModuleName
}

func (AppModule) IsOnePerModuleType() {}

func (AppModule) IsAppModule() {}

// State and messages are encoded as JSON; there is nothing to register with
// the amino or protobuf registries.
func (AppModule) RegisterLegacyAminoCodec(*codec.LegacyAmino) {}

func (AppModule) RegisterInterfaces(codectypes.InterfaceRegistry) {}

func (AppModule) RegisterGRPCGatewayRoutes(client.Context, *runtime.ServeMux) {}

func (AppModule) DefaultGenesis(codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

func (AppModule) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, message json.RawMessage) error {
	var data types.GenesisState
	if err := json.Unmarshal(message, &data); err != nil {
		return fmt.Errorf("unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return data.Validate()
}

func (a AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, message json.RawMessage) {
	var genesisState types.GenesisState
	if err := json.Unmarshal(message, &genesisState); err != nil {
		panic(err)
	}
	if err := a.keeper.InitGenesis(ctx, genesisState); err != nil {
		panic(err)
	}
}

func (a AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	genState, err := a.keeper.ExportGenesis(ctx)
	if err != nil {
		panic(err)
	}
	bz, err := json.Marshal(genState)
	if err != nil {
		panic(err)
	}
	return bz
}

func (AppModule) QuerierRoute() string {
	return types.QuerierRoute
}

// ConsensusVersion is a sequence number for state-breaking change of the
// module. It should be incremented on each consensus-breaking change
// introduced by the module. To avoid wrong/empty versions, the initial version
// should be set to 1.
func (AppModule) ConsensusVersion() uint64 {
	return ConsensusVersion
}
