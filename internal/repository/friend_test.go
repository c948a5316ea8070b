//go:build integration
// +build integration

package repository

import (
	"testing"

	"teammatch-backend/internal/database/models"
	"teammatch-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FriendRepositoryTestSuite tests the FriendRepository
type FriendRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FriendRepository
}

// SetupSuite runs before all tests in the suite
func (suite *FriendRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFriendRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *FriendRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FriendRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FriendRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FriendRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *FriendRepositoryTestSuite) createFriendRow(from, to *models.User, status models.FriendStatus) *models.Friend {
	f := &models.Friend{
		UserID:   from.ID,
		FriendID: to.ID,
		Status:   status,
	}
	suite.NoError(suite.baseTestSuite.DB.Create(f).Error)
	return f
}

// TestGetIsDirectional tests that Get only matches the requested direction
func (suite *FriendRepositoryTestSuite) TestGetIsDirectional() {
	alice := suite.createUser()
	bob := suite.createUser()
	suite.createFriendRow(alice, bob, models.FriendStatusPending)

	row, err := suite.repo.Get(alice.ID, bob.ID)
	suite.NoError(err)
	suite.Equal(models.FriendStatusPending, row.Status)

	_, err = suite.repo.Get(bob.ID, alice.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestListAcceptedFriendIDs tests that only ACCEPTED rows are listed
func (suite *FriendRepositoryTestSuite) TestListAcceptedFriendIDs() {
	alice := suite.createUser()
	accepted := suite.createUser()
	pending := suite.createUser()
	blocked := suite.createUser()
	suite.createFriendRow(alice, accepted, models.FriendStatusAccepted)
	suite.createFriendRow(alice, pending, models.FriendStatusPending)
	suite.createFriendRow(alice, blocked, models.FriendStatusBlocked)

	ids, err := suite.repo.ListAcceptedFriendIDs(alice.ID)

	suite.NoError(err)
	suite.Len(ids, 1)
	suite.Equal(accepted.ID, ids[0])
}

// TestListPendingFor tests listing requests addressed to a user
func (suite *FriendRepositoryTestSuite) TestListPendingFor() {
	alice := suite.createUser()
	bob := suite.createUser()
	carol := suite.createUser()
	suite.createFriendRow(bob, alice, models.FriendStatusPending)
	suite.createFriendRow(carol, alice, models.FriendStatusPending)
	suite.createFriendRow(alice, bob, models.FriendStatusPending) // outgoing, not listed

	rows, err := suite.repo.ListPendingFor(alice.ID)

	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal(bob.ID, rows[0].UserID)
	suite.Equal(carol.ID, rows[1].UserID)
}

// TestDeletePair tests that both directions disappear together
func (suite *FriendRepositoryTestSuite) TestDeletePair() {
	alice := suite.createUser()
	bob := suite.createUser()
	suite.createFriendRow(alice, bob, models.FriendStatusAccepted)
	suite.createFriendRow(bob, alice, models.FriendStatusAccepted)

	err := suite.repo.DeletePair(alice.ID, bob.ID)

	suite.NoError(err)
	_, err = suite.repo.Get(alice.ID, bob.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = suite.repo.Get(bob.ID, alice.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteAllForUser tests the account-deletion sweep over both columns
func (suite *FriendRepositoryTestSuite) TestDeleteAllForUser() {
	alice := suite.createUser()
	bob := suite.createUser()
	carol := suite.createUser()
	suite.createFriendRow(alice, bob, models.FriendStatusAccepted)
	suite.createFriendRow(bob, alice, models.FriendStatusAccepted)
	suite.createFriendRow(carol, alice, models.FriendStatusPending)
	untouched := suite.createFriendRow(bob, carol, models.FriendStatusAccepted)

	err := suite.repo.DeleteAllForUser(alice.ID)

	suite.NoError(err)
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Friend{}).
		Where("user_id = ? OR friend_id = ?", alice.ID, alice.ID).
		Count(&count).Error)
	suite.Equal(int64(0), count)

	remaining, err := suite.repo.GetByID(untouched.ID)
	suite.NoError(err)
	suite.Equal(bob.ID, remaining.UserID)
}

// TestFriendRepositoryTestSuite runs the test suite
func TestFriendRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FriendRepositoryTestSuite))
}
