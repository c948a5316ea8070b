package service_test

import (
	"testing"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/mocks"
	"teammatch-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FriendServiceTestSuite defines the test suite for FriendService
type FriendServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockFriendRepo *mocks.MockFriendRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	friendService  *service.FriendService
}

// SetupTest sets up the test suite
func (suite *FriendServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFriendRepo = mocks.NewMockFriendRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.friendService = service.NewFriendService(suite.mockFriendRepo, suite.mockUserRepo)
}

// TearDownTest cleans up after each test
func (suite *FriendServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRequest tests sending a friend request
func (suite *FriendServiceTestSuite) TestRequest() {
	userID := uuid.New()
	friendID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(friendID).
		Return(&models.User{BaseModel: models.BaseModel{ID: friendID}}, nil).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Get(userID, friendID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockFriendRepo.EXPECT().
		Get(friendID, userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.friendService.Request(userID, friendID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, response.UserID)
	assert.Equal(suite.T(), friendID, response.FriendID)
	assert.Equal(suite.T(), models.FriendStatusPending, response.Status)
}

// TestRequestSelf tests that a user cannot befriend themself
func (suite *FriendServiceTestSuite) TestRequestSelf() {
	userID := uuid.New()

	response, err := suite.friendService.Request(userID, userID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRequestExistingRelationship tests that a row in either direction blocks a new request
func (suite *FriendServiceTestSuite) TestRequestExistingRelationship() {
	userID := uuid.New()
	friendID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(friendID).
		Return(&models.User{BaseModel: models.BaseModel{ID: friendID}}, nil).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Get(userID, friendID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockFriendRepo.EXPECT().
		Get(friendID, userID).
		Return(&models.Friend{UserID: friendID, FriendID: userID, Status: models.FriendStatusPending}, nil).
		Times(1)

	response, err := suite.friendService.Request(userID, friendID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFriendExists)
}

// TestAccept tests accepting a request and writing the reciprocal row
func (suite *FriendServiceTestSuite) TestAccept() {
	userID := uuid.New()
	requesterID := uuid.New()
	row := &models.Friend{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    requesterID,
		FriendID:  userID,
		Status:    models.FriendStatusPending,
	}

	suite.mockFriendRepo.EXPECT().
		Get(requesterID, userID).
		Return(row, nil).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(f *models.Friend) error {
			assert.Equal(suite.T(), models.FriendStatusAccepted, f.Status)
			return nil
		}).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(f *models.Friend) error {
			assert.Equal(suite.T(), userID, f.UserID)
			assert.Equal(suite.T(), requesterID, f.FriendID)
			assert.Equal(suite.T(), models.FriendStatusAccepted, f.Status)
			return nil
		}).
		Times(1)

	err := suite.friendService.Accept(userID, requesterID)

	assert.NoError(suite.T(), err)
}

// TestAcceptNotPending tests accepting a request that is no longer pending
func (suite *FriendServiceTestSuite) TestAcceptNotPending() {
	userID := uuid.New()
	requesterID := uuid.New()
	row := &models.Friend{
		UserID:   requesterID,
		FriendID: userID,
		Status:   models.FriendStatusBlocked,
	}

	suite.mockFriendRepo.EXPECT().
		Get(requesterID, userID).
		Return(row, nil).
		Times(1)

	err := suite.friendService.Accept(userID, requesterID)

	assert.True(suite.T(), apperrors.IsNotEligible(err))
}

// TestBlockCreatesRow tests blocking a user with no prior relationship
func (suite *FriendServiceTestSuite) TestBlockCreatesRow() {
	userID := uuid.New()
	targetID := uuid.New()

	suite.mockFriendRepo.EXPECT().
		Get(userID, targetID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(f *models.Friend) error {
			assert.Equal(suite.T(), models.FriendStatusBlocked, f.Status)
			return nil
		}).
		Times(1)

	err := suite.friendService.Block(userID, targetID)

	assert.NoError(suite.T(), err)
}

// TestBlockUpdatesExistingRow tests blocking over an existing relationship
func (suite *FriendServiceTestSuite) TestBlockUpdatesExistingRow() {
	userID := uuid.New()
	targetID := uuid.New()
	row := &models.Friend{UserID: userID, FriendID: targetID, Status: models.FriendStatusAccepted}

	suite.mockFriendRepo.EXPECT().
		Get(userID, targetID).
		Return(row, nil).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(f *models.Friend) error {
			assert.Equal(suite.T(), models.FriendStatusBlocked, f.Status)
			return nil
		}).
		Times(1)

	err := suite.friendService.Block(userID, targetID)

	assert.NoError(suite.T(), err)
}

// TestListFriendsSkipsDeletedAccounts tests that vanished users are filtered out
func (suite *FriendServiceTestSuite) TestListFriendsSkipsDeletedAccounts() {
	userID := uuid.New()
	aliveID := uuid.New()
	goneID := uuid.New()

	suite.mockFriendRepo.EXPECT().
		ListAcceptedFriendIDs(userID).
		Return([]uuid.UUID{aliveID, goneID}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(aliveID).
		Return(&models.User{BaseModel: models.BaseModel{ID: aliveID}, Username: "alive"}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(goneID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	friends, err := suite.friendService.ListFriends(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), friends, 1)
	assert.Equal(suite.T(), "alive", friends[0].Username)
}

// TestRemove tests removing a friendship in both directions
func (suite *FriendServiceTestSuite) TestRemove() {
	userID := uuid.New()
	friendID := uuid.New()

	suite.mockFriendRepo.EXPECT().
		DeletePair(userID, friendID).
		Return(nil).
		Times(1)

	err := suite.friendService.Remove(userID, friendID)

	assert.NoError(suite.T(), err)
}

// TestFriendServiceTestSuite runs the test suite
func TestFriendServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FriendServiceTestSuite))
}
