package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	origin := types.BridgeOrigin{ChainID: testOriginChain, ContractAddress: testOriginContract}
	suite.Require().NoError(f.k.ApproveForTrade(f.ctx, f.govModAddr, origin))

	_, err := f.k.Execute(f.ctx, denom, info(f.addrs[0].String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Name: "Renamed",
	}})
	suite.Require().NoError(err)

	exported, err := f.k.ExportGenesis(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(exported.Assets, 1)
	suite.Require().True(exported.Assets[0].Approved)
	suite.Require().NotNil(exported.Assets[0].Override)

	fresh := SetupTest(suite.T())
	suite.Require().NoError(fresh.k.InitGenesis(fresh.ctx, *exported))

	restored, err := fresh.k.GetOrigin(fresh.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(origin, restored)

	approved, err := fresh.k.ValidateWrappedTokenForTrade(fresh.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().True(approved)
}
