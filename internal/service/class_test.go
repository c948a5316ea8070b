package service_test

import (
	"testing"

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

// ClassServiceTestSuite defines the test suite for ClassService
type ClassServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockClassRepo  *mocks.MockClassroomRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	mockNotifier   *mocks.MockNotifier
	classService   *service.ClassService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ClassServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClassRepo = mocks.NewMockClassroomRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.validator = validator.New()

	teamService := service.NewTeamService(
		suite.mockTeamRepo, suite.mockMemberRepo, suite.mockClassRepo,
		mocks.NewMockCategoryRepositoryInterface(suite.ctrl), suite.mockNotifier, suite.validator)
	suite.classService = service.NewClassService(
		suite.mockClassRepo, suite.mockTeamRepo, teamService, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ClassServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateClass tests creating a class with a generated join code
func (suite *ClassServiceTestSuite) TestCreateClass() {
	ownerID := uuid.New()
	req := &service.CreateClassRequest{
		Name:        "Algorithms 101",
		Description: "Fall cohort",
	}

	suite.mockClassRepo.EXPECT().
		CodeExists(gomock.Any()).
		Return(false, nil).
		Times(1)

	suite.mockClassRepo.EXPECT().
		CreateWithAdmin(gomock.Any()).
		DoAndReturn(func(class *models.Classroom) error {
			assert.Len(suite.T(), class.Code, 6)
			assert.Equal(suite.T(), ownerID, class.OwnerID)
			return nil
		}).
		Times(1)

	response, err := suite.classService.Create(ownerID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Len(suite.T(), response.Code, 6)
}

// TestCreateClassRetriesCollidingCode tests that a taken join code is redrawn
func (suite *ClassServiceTestSuite) TestCreateClassRetriesCollidingCode() {
	req := &service.CreateClassRequest{Name: "Algorithms 101"}

	first := suite.mockClassRepo.EXPECT().
		CodeExists(gomock.Any()).
		Return(true, nil).
		Times(1)
	suite.mockClassRepo.EXPECT().
		CodeExists(gomock.Any()).
		Return(false, nil).
		Times(1).
		After(first)

	suite.mockClassRepo.EXPECT().
		CreateWithAdmin(gomock.Any()).
		Return(nil).
		Times(1)

	_, err := suite.classService.Create(uuid.New(), req)

	assert.NoError(suite.T(), err)
}

// TestCreateClassValidationError tests creating a class with no name
func (suite *ClassServiceTestSuite) TestCreateClassValidationError() {
	response, err := suite.classService.Create(uuid.New(), &service.CreateClassRequest{})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestJoin tests joining a class by its code
func (suite *ClassServiceTestSuite) TestJoin() {
	classID := uuid.New()
	userID := uuid.New()
	class := &models.Classroom{
		BaseModel: models.BaseModel{ID: classID},
		Name:      "Algorithms 101",
		Code:      "AB12CD",
	}

	suite.mockClassRepo.EXPECT().
		GetByCode("AB12CD").
		Return(class, nil).
		Times(1)

	suite.mockClassRepo.EXPECT().
		IsMember(classID, userID).
		Return(false, nil).
		Times(1)

	suite.mockClassRepo.EXPECT().
		AddMember(classID, userID, models.ClassRoleMember).
		Return(nil).
		Times(1)

	response, err := suite.classService.Join("AB12CD", userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), classID, response.ID)
}

// TestJoinUnknownCode tests joining with a code no class holds
func (suite *ClassServiceTestSuite) TestJoinUnknownCode() {
	suite.mockClassRepo.EXPECT().
		GetByCode("NOPE99").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.classService.Join("NOPE99", uuid.New())

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClassNotFound)
}

// TestJoinTwice tests that rejoining a class is rejected as a duplicate
func (suite *ClassServiceTestSuite) TestJoinTwice() {
	classID := uuid.New()
	userID := uuid.New()
	class := &models.Classroom{BaseModel: models.BaseModel{ID: classID}, Code: "AB12CD"}

	suite.mockClassRepo.EXPECT().
		GetByCode("AB12CD").
		Return(class, nil).
		Times(1)

	suite.mockClassRepo.EXPECT().
		IsMember(classID, userID).
		Return(true, nil).
		Times(1)

	response, err := suite.classService.Join("AB12CD", userID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClassMemberExists)
}

// TestDissolveCascadesToTeams tests that dissolving a class dissolves its teams first
func (suite *ClassServiceTestSuite) TestDissolveCascadesToTeams() {
	classID := uuid.New()
	ownerID := uuid.New()
	teamID := uuid.New()
	memberID := uuid.New()
	class := &models.Classroom{
		BaseModel: models.BaseModel{ID: classID},
		OwnerID:   ownerID,
	}
	team := models.Team{
		BaseModel: models.BaseModel{ID: teamID},
		OwnerID:   uuid.New(),
		ClassID:   &classID,
	}

	suite.mockClassRepo.EXPECT().
		GetByID(classID).
		Return(class, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		ListByClass(classID).
		Return([]models.Team{team}, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		ListByTeam(teamID).
		Return([]models.TeamMember{
			{TeamID: teamID, UserID: memberID, Role: models.TeamRoleMember},
		}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		DeleteWithMembers(teamID).
		Return(nil).
		Times(1)

	suite.mockNotifier.EXPECT().
		Send(memberID, models.NotificationClassDissolved, gomock.Any(), gomock.Any()).
		Times(1)

	suite.mockClassRepo.EXPECT().
		DeleteWithMembers(classID).
		Return(nil).
		Times(1)

	err := suite.classService.Dissolve(classID, ownerID)

	assert.NoError(suite.T(), err)
}

// TestDissolveByNonOwner tests that only the class owner may dissolve it
func (suite *ClassServiceTestSuite) TestDissolveByNonOwner() {
	classID := uuid.New()
	class := &models.Classroom{
		BaseModel: models.BaseModel{ID: classID},
		OwnerID:   uuid.New(),
	}

	suite.mockClassRepo.EXPECT().
		GetByID(classID).
		Return(class, nil).
		Times(1)

	err := suite.classService.Dissolve(classID, uuid.New())

	assert.True(suite.T(), apperrors.IsPermission(err))
}

// TestClassServiceTestSuite runs the test suite
func TestClassServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClassServiceTestSuite))
}
