package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/bridge-exchange/x/exchange/types"
)

func (suite *KeeperTestSuite) TestPauseResume() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{Pause: &types.PauseMsg{}})
	suite.Require().NoError(err)

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().True(config.IsPaused)

	_, err = f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{Resume: &types.ResumeMsg{}})
	suite.Require().NoError(err)

	config, err = f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().False(config.IsPaused)
}

func (suite *KeeperTestSuite) TestPauseRejectsNonAdmin() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.buyer), types.ExecuteMsg{Pause: &types.PauseMsg{}})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestUpdateBuyer() {
	f := suite.fixture
	f.instantiate()
	next := f.addrs[2].String()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{UpdateBuyer: &types.UpdateBuyerMsg{Buyer: next}})
	suite.Require().NoError(err)

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(next, config.Buyer)
}

func (suite *KeeperTestSuite) TestUpdatePrice() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{UpdatePrice: &types.UpdatePriceMsg{Price: math.NewInt(50_000)}})
	suite.Require().NoError(err)

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(50_000), config.Price)
}

func (suite *KeeperTestSuite) TestUpdatePriceRejectsZero() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{UpdatePrice: &types.UpdatePriceMsg{Price: math.ZeroInt()}})
	suite.Require().ErrorIs(err, types.ErrZeroAmount)

	// The configured price is untouched by the failed update.
	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(testPrice), config.Price)
}

func (suite *KeeperTestSuite) TestUpdatePriceRejectsNonAdmin() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.buyer), types.ExecuteMsg{UpdatePrice: &types.UpdatePriceMsg{Price: math.NewInt(50_000)}})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(testPrice), config.Price)
}

func (suite *KeeperTestSuite) TestWithdrawNativeTokens() {
	f := suite.fixture
	f.instantiate()
	f.fundExchange(math.NewInt(5_000))

	resp, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{WithdrawNative: &types.WithdrawNativeMsg{
		Amount:    math.NewInt(1_200),
		Recipient: f.addrs[2].String(),
	}})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 1)

	send := resp.Messages[0].Msg.Bank.Send
	suite.Require().Equal(f.addrs[2].String(), send.ToAddress)
	suite.Require().Equal("1200", send.Amount[0].Amount)
}

func (suite *KeeperTestSuite) TestWithdrawNativeTokensRejectsZero() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{WithdrawNative: &types.WithdrawNativeMsg{
		Amount:    math.ZeroInt(),
		Recipient: f.addrs[2].String(),
	}})
	suite.Require().ErrorIs(err, types.ErrZeroAmount)
}

func (suite *KeeperTestSuite) TestEmergencyWithdrawDrainsBalance() {
	f := suite.fixture
	f.instantiate()
	f.fundExchange(math.NewInt(7_777))

	resp, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{EmergencyWithdraw: &types.EmergencyWithdrawMsg{
		Recipient: f.addrs[2].String(),
	}})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 1)
	suite.Require().Equal("7777", resp.Messages[0].Msg.Bank.Send.Amount[0].Amount)
}

func (suite *KeeperTestSuite) TestEmergencyWithdrawWithoutFunds() {
	f := suite.fixture
	f.instantiate()

	resp, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{EmergencyWithdraw: &types.EmergencyWithdrawMsg{
		Recipient: f.addrs[2].String(),
	}})
	suite.Require().NoError(err)
	suite.Require().Empty(resp.Messages)

	var message string
	for _, attr := range resp.Attributes {
		if attr.Key == types.AttributeKeyMessage {
			message = attr.Value
		}
	}
	suite.Require().Equal("no_funds", message)
}

func (suite *KeeperTestSuite) TestUnknownExecuteVariant() {
	f := suite.fixture
	f.instantiate()

	_, err := f.k.Execute(f.ctx, info(f.admin), types.ExecuteMsg{})
	suite.Require().Error(err)
}
