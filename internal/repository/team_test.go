//go:build integration
// +build integration

package repository

import (
	"testing"

	"teammatch-backend/internal/database/models"
	"teammatch-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *TeamMemberRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateWithLeader tests that team creation also inserts the leader membership
func (suite *TeamRepositoryTestSuite) TestCreateWithLeader() {
	owner := suite.createUser()
	team := testutils.NewTeamFactory().Create(owner.ID)

	err := suite.repo.CreateWithLeader(team)

	suite.NoError(err)
	m, err := suite.memberRepo.GetByTeamAndUser(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleLeader, m.Role)
}

// TestGetWithMembers tests that memberships and their users are preloaded
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	owner := suite.createUser()
	team := testutils.NewTeamFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithLeader(team))
	member := suite.createUser()
	suite.NoError(suite.baseTestSuite.DB.Create(&models.TeamMember{
		TeamID: team.ID, UserID: member.ID, Role: models.TeamRoleMember,
	}).Error)

	retrieved, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Len(retrieved.Members, 2)
	suite.NotNil(retrieved.Members[0].User)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	team, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestListByClassAndCategory tests the two scope listings
func (suite *TeamRepositoryTestSuite) TestListByClassAndCategory() {
	owner := suite.createUser()

	class := testutils.NewClassroomFactory().Create(owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(class).Error)
	classTeam := testutils.NewTeamFactory().WithClass(owner.ID, class.ID)
	suite.NoError(suite.repo.CreateWithLeader(classTeam))

	category := testutils.NewCategoryFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(category).Error)
	categoryTeam := testutils.NewTeamFactory().WithCategory(owner.ID, category.ID)
	suite.NoError(suite.repo.CreateWithLeader(categoryTeam))

	byClass, err := suite.repo.ListByClass(class.ID)
	suite.NoError(err)
	suite.Len(byClass, 1)
	suite.Equal(classTeam.ID, byClass[0].ID)

	byCategory, err := suite.repo.ListByCategory(category.ID)
	suite.NoError(err)
	suite.Len(byCategory, 1)
	suite.Equal(categoryTeam.ID, byCategory[0].ID)
}

// TestListForUser tests listing every team a user holds a membership in
func (suite *TeamRepositoryTestSuite) TestListForUser() {
	owner := suite.createUser()
	led := testutils.NewTeamFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithLeader(led))

	otherOwner := suite.createUser()
	joined := testutils.NewTeamFactory().Create(otherOwner.ID)
	suite.NoError(suite.repo.CreateWithLeader(joined))
	suite.NoError(suite.baseTestSuite.DB.Create(&models.TeamMember{
		TeamID: joined.ID, UserID: owner.ID, Role: models.TeamRoleMember,
	}).Error)

	unrelated := testutils.NewTeamFactory().Create(otherOwner.ID)
	suite.NoError(suite.repo.CreateWithLeader(unrelated))

	teams, err := suite.repo.ListForUser(owner.ID)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(led.ID, teams[0].ID)
	suite.Equal(joined.ID, teams[1].ID)
}

// TestUpdateRecruitStatus tests flipping the recruit status
func (suite *TeamRepositoryTestSuite) TestUpdateRecruitStatus() {
	owner := suite.createUser()
	team := testutils.NewTeamFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithLeader(team))

	err := suite.repo.UpdateRecruitStatus(team.ID, models.RecruitStatusClosed)

	suite.NoError(err)
	reloaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.RecruitStatusClosed, reloaded.RecruitStatus)
}

// TestDeleteWithMembers tests that dissolution leaves no membership rows behind
func (suite *TeamRepositoryTestSuite) TestDeleteWithMembers() {
	owner := suite.createUser()
	team := testutils.NewTeamFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithLeader(team))
	suite.NoError(suite.baseTestSuite.DB.Create(&models.TeamMember{
		TeamID: team.ID, UserID: suite.createUser().ID, Role: models.TeamRoleMember,
	}).Error)

	err := suite.repo.DeleteWithMembers(team.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(team.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	remaining, err := suite.memberRepo.CountAll(team.ID)
	suite.NoError(err)
	suite.Equal(int64(0), remaining)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
