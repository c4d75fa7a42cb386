package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/bridge-exchange/x/wrappedtoken/types"
)

func (suite *KeeperTestSuite) TestWithdrawBurnsAndEmitsOneInstruction() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	resp, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Withdraw: &types.WithdrawMsg{
		Amount:             math.NewInt(500),
		DestinationAddress: "0x00000000000000000000000000000000000000ff",
	}})
	suite.Require().NoError(err)

	// Exactly 500 burned, no more, no less.
	suite.Require().Equal(math.NewInt(500), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
	suite.Require().Equal(math.NewInt(500), f.bankkeeper.GetSupply(f.ctx, denom).Amount)

	// Exactly one cross-chain instruction.
	suite.Require().Len(resp.Messages, 1)
	anyMsg := resp.Messages[0].Msg.Any
	suite.Require().NotNil(anyMsg)
	suite.Require().Equal(types.WithdrawalTypeURL, anyMsg.TypeURL)

	withdrawal, err := types.DecodeBridgeWithdrawal(anyMsg.Value)
	suite.Require().NoError(err)
	suite.Require().Equal(f.k.Address().String(), withdrawal.Creator)
	suite.Require().Equal(holder.String(), withdrawal.UserAddress)
	suite.Require().Equal("500", withdrawal.Amount)
	suite.Require().Equal("0x00000000000000000000000000000000000000ff", withdrawal.DestinationAddress)
}

func (suite *KeeperTestSuite) TestWithdrawRejectsEmptyDestinationBeforeBurn() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Withdraw: &types.WithdrawMsg{
		Amount:             math.NewInt(500),
		DestinationAddress: "   ",
	}})
	suite.Require().Error(err)

	// The balance is untouched.
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
}

func (suite *KeeperTestSuite) TestWithdrawRejectsZeroAmount() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Withdraw: &types.WithdrawMsg{
		Amount:             math.ZeroInt(),
		DestinationAddress: "0x00000000000000000000000000000000000000ff",
	}})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
}

func (suite *KeeperTestSuite) TestWithdrawRejectsNegativeAmount() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Withdraw: &types.WithdrawMsg{
		Amount:             math.NewInt(-500),
		DestinationAddress: "0x00000000000000000000000000000000000000ff",
	}})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetSupply(f.ctx, denom).Amount)
}

func (suite *KeeperTestSuite) TestTransferRejectsNegativeAmount() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Transfer: &types.TransferMsg{
		Recipient: f.addrs[2].String(),
		Amount:    math.NewInt(-300),
	}})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
}

func (suite *KeeperTestSuite) TestBurnRejectsNegativeAmount() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Burn: &types.BurnMsg{
		Amount: math.NewInt(-400),
	}})
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetSupply(f.ctx, denom).Amount)
}

func (suite *KeeperTestSuite) TestWithdrawRejectsExcessAmount() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Withdraw: &types.WithdrawMsg{
		Amount:             math.NewInt(2_000),
		DestinationAddress: "0x00000000000000000000000000000000000000ff",
	}})
	suite.Require().Error(err)
	suite.Require().Equal(math.NewInt(1_000), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
}

func (suite *KeeperTestSuite) TestTransfer() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Transfer: &types.TransferMsg{
		Recipient: f.addrs[2].String(),
		Amount:    math.NewInt(300),
	}})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(700), f.bankkeeper.GetBalance(f.ctx, holder, denom).Amount)
	suite.Require().Equal(math.NewInt(300), f.bankkeeper.GetBalance(f.ctx, f.addrs[2], denom).Amount)
}

func (suite *KeeperTestSuite) TestBurnWithoutWithdrawal() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	resp, err := f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{Burn: &types.BurnMsg{
		Amount: math.NewInt(400),
	}})
	suite.Require().NoError(err)
	suite.Require().Empty(resp.Messages)
	suite.Require().Equal(math.NewInt(600), f.bankkeeper.GetSupply(f.ctx, denom).Amount)
}

func (suite *KeeperTestSuite) TestUpdateMetadataAuthorities() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	// The creator may update.
	_, err := f.k.Execute(f.ctx, denom, info(f.addrs[0].String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Name: "Wrapped Tether USD",
	}})
	suite.Require().NoError(err)

	resp, err := f.querier.TokenInfo(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal("Wrapped Tether USD", resp.Name)

	// A mere holder may not.
	_, err = f.k.Execute(f.ctx, denom, info(holder.String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Name: "Hijacked",
	}})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestOriginImmutableUnderMetadataUpdate() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(f.addrs[0].String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Name:     "Renamed",
		Symbol:   "RNMD",
		Decimals: 18,
	}})
	suite.Require().NoError(err)

	origin, err := f.k.GetOrigin(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(testOriginChain, origin.ChainID)
	suite.Require().Equal(testOriginContract, origin.ContractAddress)
}

func (suite *KeeperTestSuite) TestUpdateMetadataDecimalsOnlyKeepsDisplayUnit() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	_, err := f.k.Execute(f.ctx, denom, info(f.addrs[0].String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Decimals: 18,
	}})
	suite.Require().NoError(err)

	meta, ok := f.bankkeeper.GetDenomMetaData(f.ctx, denom)
	suite.Require().True(ok)
	suite.Require().Equal("wUSDT", meta.DenomUnits[1].Denom)
	suite.Require().Equal(uint32(18), meta.DenomUnits[1].Exponent)

	// A later symbol change renames the display unit.
	_, err = f.k.Execute(f.ctx, denom, info(f.addrs[0].String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Symbol: "RNMD",
	}})
	suite.Require().NoError(err)

	meta, ok = f.bankkeeper.GetDenomMetaData(f.ctx, denom)
	suite.Require().True(ok)
	suite.Require().Equal("RNMD", meta.DenomUnits[1].Denom)
	suite.Require().Equal("RNMD", meta.Display)
}

func (suite *KeeperTestSuite) TestApproveForTrade() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))
	origin := types.BridgeOrigin{ChainID: testOriginChain, ContractAddress: testOriginContract}

	// Not approved until governance says so.
	approved, err := f.k.ValidateWrappedTokenForTrade(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().False(approved)

	suite.Require().ErrorIs(f.k.ApproveForTrade(f.ctx, f.addrs[0].String(), origin), types.ErrUnauthorized)

	suite.Require().NoError(f.k.ApproveForTrade(f.ctx, f.govModAddr, origin))
	// Re-approving is a no-op.
	suite.Require().NoError(f.k.ApproveForTrade(f.ctx, f.govModAddr, origin))

	approved, err = f.k.ValidateWrappedTokenForTrade(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().True(approved)

	origins, err := f.k.ApprovedTokensForTrade(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(origins, 1)
	suite.Require().Equal(testOriginContract, origins[0].ContractAddress)
}

func (suite *KeeperTestSuite) TestValidateUnknownAsset() {
	f := suite.fixture
	approved, err := f.k.ValidateWrappedTokenForTrade(f.ctx, "wrapped/ethereum/0xmissing")
	suite.Require().NoError(err)
	suite.Require().False(approved)
}

func (suite *KeeperTestSuite) TestTokenOriginSelfReport() {
	f := suite.fixture
	holder := f.addrs[1]
	denom := f.createAsset(holder, math.NewInt(1_000))

	origin, err := f.k.TokenOrigin(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(testOriginChain, origin.ChainID)
	suite.Require().Equal(testOriginContract, origin.ContractAddress)

	_, err = f.k.TokenOrigin(f.ctx, "wrapped/ethereum/0xmissing")
	suite.Require().ErrorIs(err, types.ErrUnknownAsset)
}

func (suite *KeeperTestSuite) TestUpdateMetadataByAssetAdmin() {
	f := suite.fixture
	admin := f.addrs[2]

	denom, err := f.k.CreateAsset(f.ctx, f.addrs[0].String(), types.CreateAssetMsg{
		Origin: types.BridgeOrigin{ChainID: testOriginChain, ContractAddress: testOriginContract},
		Name:   "Wrapped Tether",
		Symbol: "wUSDT",
		Admin:  admin.String(),
	})
	suite.Require().NoError(err)

	_, err = f.k.Execute(f.ctx, denom, info(admin.String()), types.ExecuteMsg{UpdateMetadata: &types.UpdateMetadataMsg{
		Symbol: "USDT.e",
	}})
	suite.Require().NoError(err)

	resp, err := f.querier.TokenInfo(f.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal("USDT.e", resp.Symbol)
}
