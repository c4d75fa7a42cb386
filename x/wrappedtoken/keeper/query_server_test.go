package keeper_test

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

func (suite *KeeperTestSuite) TestQueryBridgeOrigin() {
	f := suite.fixture
	denom := f.createAsset(f.addrs[1], math.NewInt(1_000))

	raw, err := f.querier.HandleQuery(f.ctx, denom, types.QueryMsg{BridgeOrigin: &types.BridgeOriginQuery{}})
	suite.Require().NoError(err)

	var origin types.BridgeOrigin
	suite.Require().NoError(json.Unmarshal(raw, &origin))
	suite.Require().Equal(testOriginChain, origin.ChainID)
	suite.Require().Equal(testOriginContract, origin.ContractAddress)

	_, err = f.querier.HandleQuery(f.ctx, "wrapped/ethereum/0xmissing", types.QueryMsg{BridgeOrigin: &types.BridgeOriginQuery{}})
	suite.Require().ErrorIs(err, types.ErrUnknownAsset)
}

func (suite *KeeperTestSuite) TestQueryTokenInfo() {
	f := suite.fixture
	denom := f.createAsset(f.addrs[1], math.NewInt(1_000))

	resp, err := f.querier.TokenInfo(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal("Wrapped Tether", resp.Name)
	suite.Require().Equal("wUSDT", resp.Symbol)
	suite.Require().Equal(uint8(6), resp.Decimals)
	suite.Require().Equal(math.NewInt(1_000), resp.TotalSupply)
}

func (suite *KeeperTestSuite) TestQueryBalance() {
	f := suite.fixture
	denom := f.createAsset(f.addrs[1], math.NewInt(1_000))

	resp, err := f.querier.Balance(f.ctx, denom, types.BalanceQuery{Address: f.addrs[1].String()})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(1_000), resp.Balance)

	resp, err = f.querier.Balance(f.ctx, denom, types.BalanceQuery{Address: f.addrs[2].String()})
	suite.Require().NoError(err)
	suite.Require().True(resp.Balance.IsZero())
}

func (suite *KeeperTestSuite) TestQueryApprovedTokens() {
	f := suite.fixture
	denom := f.createAsset(f.addrs[1], math.NewInt(1_000))
	origin := types.BridgeOrigin{ChainID: testOriginChain, ContractAddress: testOriginContract}

	resp, err := f.querier.ApprovedTokensList(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Empty(resp.ApprovedTokens)

	suite.Require().NoError(f.k.ApproveForTrade(f.ctx, f.govModAddr, origin))

	raw, err := f.querier.HandleQuery(f.ctx, denom, types.QueryMsg{ApprovedTokens: &types.ApprovedTokensQuery{}})
	suite.Require().NoError(err)

	var listed types.ApprovedTokensResponse
	suite.Require().NoError(json.Unmarshal(raw, &listed))
	suite.Require().Len(listed.ApprovedTokens, 1)
}
