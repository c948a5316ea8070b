package service_test

import (
	"testing"

	"teammatch-backend/internal/auth"
	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/mocks"
	"teammatch-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	mockFriendRepo *mocks.MockFriendRepositoryInterface
	mockClassRepo  *mocks.MockClassroomRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockNotifier   *mocks.MockNotifier
	userService    *service.UserService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockFriendRepo = mocks.NewMockFriendRepositoryInterface(suite.ctrl)
	suite.mockClassRepo = mocks.NewMockClassroomRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.validator = validator.New()

	teamService := service.NewTeamService(
		suite.mockTeamRepo, suite.mockMemberRepo, suite.mockClassRepo,
		mocks.NewMockCategoryRepositoryInterface(suite.ctrl), suite.mockNotifier, suite.validator)
	membershipService := service.NewMembershipService(suite.mockMemberRepo, suite.mockTeamRepo, suite.mockNotifier)
	suite.userService = service.NewUserService(
		suite.mockUserRepo, suite.mockMemberRepo, suite.mockFriendRepo, suite.mockClassRepo,
		teamService, membershipService, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests registering a new account
func (suite *UserServiceTestSuite) TestRegister() {
	req := &service.RegisterRequest{
		Username:  "alice01",
		Password:  "correct-horse",
		Name:      "Alice",
		StudentNo: "20260001",
		School:    "State University",
	}

	suite.mockUserRepo.EXPECT().
		GetByUsernameOrStudentNo(req.Username, req.StudentNo).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.NotEqual(suite.T(), req.Password, user.PasswordHash)
			assert.NotEmpty(suite.T(), user.PasswordHash)
			return nil
		}).
		Times(1)

	response, err := suite.userService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Username, response.Username)
	assert.Equal(suite.T(), req.StudentNo, response.StudentNo)
}

// TestRegisterDuplicate tests registering an already-taken username
func (suite *UserServiceTestSuite) TestRegisterDuplicate() {
	req := &service.RegisterRequest{
		Username:  "alice01",
		Password:  "correct-horse",
		Name:      "Alice",
		StudentNo: "20260001",
	}

	suite.mockUserRepo.EXPECT().
		GetByUsernameOrStudentNo(req.Username, req.StudentNo).
		Return(&models.User{Username: req.Username}, nil).
		Times(1)

	response, err := suite.userService.Register(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestRegisterValidationError tests registering with a too-short password
func (suite *UserServiceTestSuite) TestRegisterValidationError() {
	req := &service.RegisterRequest{
		Username:  "alice01",
		Password:  "short",
		Name:      "Alice",
		StudentNo: "20260001",
	}

	response, err := suite.userService.Register(req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestAuthenticate tests logging in with valid credentials
func (suite *UserServiceTestSuite) TestAuthenticate() {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(suite.T(), err)
	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     "alice01",
		PasswordHash: hash,
	}

	suite.mockUserRepo.EXPECT().
		GetByUsername("alice01").
		Return(user, nil).
		Times(1)

	got, err := suite.userService.Authenticate("alice01", "correct-horse")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, got.ID)
}

// TestAuthenticateWrongPassword tests that a wrong password is rejected
func (suite *UserServiceTestSuite) TestAuthenticateWrongPassword() {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(suite.T(), err)
	user := &models.User{Username: "alice01", PasswordHash: hash}

	suite.mockUserRepo.EXPECT().
		GetByUsername("alice01").
		Return(user, nil).
		Times(1)

	got, err := suite.userService.Authenticate("alice01", "wrong-horse")

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestAuthenticateUnknownUser tests that a missing user reads like a wrong password
func (suite *UserServiceTestSuite) TestAuthenticateUnknownUser() {
	suite.mockUserRepo.EXPECT().
		GetByUsername("ghost").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	got, err := suite.userService.Authenticate("ghost", "whatever8")

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestUpdateProfile tests creating the caller's matching profile
func (suite *UserServiceTestSuite) TestUpdateProfile() {
	userID := uuid.New()
	req := &service.UpdateProfileRequest{
		Personality: "steady",
		Goals:       "shipping",
		Skills:      "go,sql",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		UpsertProfile(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetWithProfile(userID).
		Return(&models.User{
			BaseModel: models.BaseModel{ID: userID},
			Username:  "alice01",
			Profile: &models.Profile{
				UserID: userID,
				Skills: "go,sql",
			},
		}, nil).
		Times(1)

	response, err := suite.userService.UpdateProfile(userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.Profile)
	assert.Equal(suite.T(), "go,sql", response.Profile.Skills)
}

// TestSearchClampsLimit tests that out-of-range limits fall back to the default
func (suite *UserServiceTestSuite) TestSearchClampsLimit() {
	suite.mockUserRepo.EXPECT().
		Search("ali", 20).
		Return([]models.User{}, nil).
		Times(1)

	_, err := suite.userService.Search("ali", 500)

	assert.NoError(suite.T(), err)
}

// TestDeleteBlockedWhileLeadingPopulatedTeam tests that deletion is refused
// while the user leads a team with other members
func (suite *UserServiceTestSuite) TestDeleteBlockedWhileLeadingPopulatedTeam() {
	userID := uuid.New()
	teamID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		ListLeaderships(userID).
		Return([]models.TeamMember{
			{TeamID: teamID, UserID: userID, Role: models.TeamRoleLeader},
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CountAll(teamID).
		Return(int64(3), nil).
		Times(1)

	err := suite.userService.Delete(userID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotEligible(err))
}

// TestDeleteDissolvesSoloTeamsAndLeavesOthers tests the full cleanup path
func (suite *UserServiceTestSuite) TestDeleteDissolvesSoloTeamsAndLeavesOthers() {
	userID := uuid.New()
	soloTeamID := uuid.New()
	otherTeamID := uuid.New()
	otherOwnerID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		ListLeaderships(userID).
		Return([]models.TeamMember{
			{TeamID: soloTeamID, UserID: userID, Role: models.TeamRoleLeader},
		}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CountAll(soloTeamID).
		Return(int64(1), nil).
		Times(1)

	// Solo-led team is dissolved through the team service
	suite.mockTeamRepo.EXPECT().
		GetByID(soloTeamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: soloTeamID}, OwnerID: userID}, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		ListByTeam(soloTeamID).
		Return([]models.TeamMember{
			{TeamID: soloTeamID, UserID: userID, Role: models.TeamRoleLeader},
		}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		DeleteWithMembers(soloTeamID).
		Return(nil).
		Times(1)

	// Remaining MEMBER membership is withdrawn
	suite.mockMemberRepo.EXPECT().
		ListByUser(userID).
		Return([]models.TeamMember{
			{TeamID: otherTeamID, UserID: userID, Role: models.TeamRoleMember},
		}, nil).
		Times(1)
	suite.mockTeamRepo.EXPECT().
		GetByID(otherTeamID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: otherTeamID}, OwnerID: otherOwnerID}, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(otherTeamID, userID).
		Return(&models.TeamMember{TeamID: otherTeamID, UserID: userID, Role: models.TeamRoleMember}, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Delete(otherTeamID, userID).
		Return(nil).
		Times(1)
	suite.mockNotifier.EXPECT().
		Send(otherOwnerID, models.NotificationWithdrawal, gomock.Any(), gomock.Any()).
		Times(1)

	suite.mockFriendRepo.EXPECT().
		DeleteAllForUser(userID).
		Return(nil).
		Times(1)
	suite.mockClassRepo.EXPECT().
		RemoveMembersByUser(userID).
		Return(nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		Delete(userID).
		Return(nil).
		Times(1)

	err := suite.userService.Delete(userID)

	assert.NoError(suite.T(), err)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
