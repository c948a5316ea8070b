//go:build integration
// +build integration

package repository

import (
	"testing"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user directly via gorm
func (suite *TeamMemberRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().Create()
	err := suite.baseTestSuite.DB.Create(user).Error
	suite.NoError(err)
	return user
}

// helper to insert a bare team row, without the leader membership
func (suite *TeamMemberRepositoryTestSuite) createTeam(owner *models.User, capacity *int) *models.Team {
	team := testutils.NewTeamFactory().Create(owner.ID)
	team.Capacity = capacity
	err := suite.baseTestSuite.DB.Create(team).Error
	suite.NoError(err)
	return team
}

// helper to insert a membership row directly via gorm
func (suite *TeamMemberRepositoryTestSuite) createMembership(team *models.Team, user *models.User, role models.TeamRole) *models.TeamMember {
	m := &models.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
		Role:   role,
	}
	err := suite.baseTestSuite.DB.Create(m).Error
	suite.NoError(err)
	return m
}

// TestGetByTeamAndUser tests retrieving a membership by (team, user)
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamAndUser() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)

	m, err := suite.repo.GetByTeamAndUser(team.ID, owner.ID)

	suite.NoError(err)
	suite.NotNil(m)
	suite.Equal(team.ID, m.TeamID)
	suite.Equal(owner.ID, m.UserID)
	suite.Equal(models.TeamRoleLeader, m.Role)
}

// TestGetByTeamAndUserNotFound tests looking up a membership that does not exist
func (suite *TeamMemberRepositoryTestSuite) TestGetByTeamAndUserNotFound() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	stranger := suite.createUser()

	m, err := suite.repo.GetByTeamAndUser(team.ID, stranger.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(m)
}

// TestCountMembersExcludesLeader tests that CountMembers counts MEMBER rows only
func (suite *TeamMemberRepositoryTestSuite) TestCountMembersExcludesLeader() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	suite.createMembership(team, suite.createUser(), models.TeamRoleMember)
	suite.createMembership(team, suite.createUser(), models.TeamRoleMember)

	members, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), members)

	all, err := suite.repo.CountAll(team.ID)
	suite.NoError(err)
	suite.Equal(int64(3), all)
}

// TestInsertLeader tests inserting the founding leader membership
func (suite *TeamMemberRepositoryTestSuite) TestInsertLeader() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)

	err := suite.repo.InsertLeader(team.ID, owner.ID)

	suite.NoError(err)
	m, err := suite.repo.GetByTeamAndUser(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleLeader, m.Role)
}

// TestInsertLeaderAlreadyMember tests that a second leader insert is refused
func (suite *TeamMemberRepositoryTestSuite) TestInsertLeaderAlreadyMember() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)

	err := suite.repo.InsertLeader(team.ID, owner.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrMemberExists)
}

// TestInsertMemberWithCapacity tests joining a team with free capacity
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacity() {
	owner := suite.createUser()
	capacity := 2
	team := suite.createTeam(owner, &capacity)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	joiner := suite.createUser()

	err := suite.repo.InsertMemberWithCapacity(team.ID, joiner.ID)

	suite.NoError(err)
	m, err := suite.repo.GetByTeamAndUser(team.ID, joiner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleMember, m.Role)
}

// TestInsertMemberWithCapacityUnbounded tests that a nil capacity never blocks a join
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacityUnbounded() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	for i := 0; i < 5; i++ {
		suite.createMembership(team, suite.createUser(), models.TeamRoleMember)
	}
	joiner := suite.createUser()

	err := suite.repo.InsertMemberWithCapacity(team.ID, joiner.ID)

	suite.NoError(err)
}

// TestInsertMemberWithCapacityFull tests the capacity check inside the transaction
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacityFull() {
	owner := suite.createUser()
	capacity := 1
	team := suite.createTeam(owner, &capacity)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	suite.createMembership(team, suite.createUser(), models.TeamRoleMember)
	joiner := suite.createUser()

	err := suite.repo.InsertMemberWithCapacity(team.ID, joiner.ID)

	suite.Error(err)
	suite.True(apperrors.IsCapacityExceeded(err))

	// The refused join must leave no membership row behind
	_, err = suite.repo.GetByTeamAndUser(team.ID, joiner.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestInsertMemberWithCapacityEditedRow tests that the check reads the
// capacity off the team row at insert time, so a shrink that landed
// after the team was loaded elsewhere still blocks the join
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacityEditedRow() {
	owner := suite.createUser()
	capacity := 3
	team := suite.createTeam(owner, &capacity)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	suite.createMembership(team, suite.createUser(), models.TeamRoleMember)
	joiner := suite.createUser()

	err := suite.baseTestSuite.DB.Model(&models.Team{}).
		Where("id = ?", team.ID).
		Update("capacity", 1).Error
	suite.NoError(err)

	err = suite.repo.InsertMemberWithCapacity(team.ID, joiner.ID)

	suite.Error(err)
	suite.True(apperrors.IsCapacityExceeded(err))
	_, err = suite.repo.GetByTeamAndUser(team.ID, joiner.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestInsertMemberWithCapacityDuplicate tests that joining twice is refused
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacityDuplicate() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	joiner := suite.createUser()
	suite.createMembership(team, joiner, models.TeamRoleMember)

	err := suite.repo.InsertMemberWithCapacity(team.ID, joiner.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrMemberExists)
}

// TestInsertMemberWithCapacityTeamGone tests joining a deleted team
func (suite *TeamMemberRepositoryTestSuite) TestInsertMemberWithCapacityTeamGone() {
	joiner := suite.createUser()

	err := suite.repo.InsertMemberWithCapacity(uuid.New(), joiner.ID)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestListByTeam tests listing a roster in insertion order
func (suite *TeamMemberRepositoryTestSuite) TestListByTeam() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	first := suite.createUser()
	second := suite.createUser()
	suite.createMembership(team, first, models.TeamRoleMember)
	suite.createMembership(team, second, models.TeamRoleMember)

	roster, err := suite.repo.ListByTeam(team.ID)

	suite.NoError(err)
	suite.Len(roster, 3)
	suite.Equal(owner.ID, roster[0].UserID)
	suite.Equal(first.ID, roster[1].UserID)
	suite.Equal(second.ID, roster[2].UserID)
}

// TestSwapLeader tests the atomic delegation of leadership
func (suite *TeamMemberRepositoryTestSuite) TestSwapLeader() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	successor := suite.createUser()
	suite.createMembership(team, successor, models.TeamRoleMember)

	err := suite.repo.SwapLeader(team.ID, owner.ID, successor.ID)

	suite.NoError(err)

	demoted, err := suite.repo.GetByTeamAndUser(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleMember, demoted.Role)

	promoted, err := suite.repo.GetByTeamAndUser(team.ID, successor.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleLeader, promoted.Role)

	var reloaded models.Team
	suite.NoError(suite.baseTestSuite.DB.First(&reloaded, "id = ?", team.ID).Error)
	suite.Equal(successor.ID, reloaded.OwnerID)
}

// TestSwapLeaderFromNotLeader tests delegation by someone without the leader role
func (suite *TeamMemberRepositoryTestSuite) TestSwapLeaderFromNotLeader() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	member := suite.createUser()
	other := suite.createUser()
	suite.createMembership(team, member, models.TeamRoleMember)
	suite.createMembership(team, other, models.TeamRoleMember)

	err := suite.repo.SwapLeader(team.ID, member.ID, other.ID)

	suite.Error(err)
	suite.True(apperrors.IsNotEligible(err))
}

// TestSwapLeaderTargetNotMember tests delegation towards a non-member
func (suite *TeamMemberRepositoryTestSuite) TestSwapLeaderTargetNotMember() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	stranger := suite.createUser()

	err := suite.repo.SwapLeader(team.ID, owner.ID, stranger.ID)

	suite.Error(err)
	suite.True(apperrors.IsNotEligible(err))

	// The failed swap must leave the leader role in place
	leader, err := suite.repo.GetByTeamAndUser(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleLeader, leader.Role)
}

// TestDelete tests removing a single membership row
func (suite *TeamMemberRepositoryTestSuite) TestDelete() {
	owner := suite.createUser()
	team := suite.createTeam(owner, nil)
	suite.createMembership(team, owner, models.TeamRoleLeader)
	member := suite.createUser()
	suite.createMembership(team, member, models.TeamRoleMember)

	err := suite.repo.Delete(team.ID, member.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByTeamAndUser(team.ID, member.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	all, err := suite.repo.CountAll(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), all)
}

// TestListLeaderships tests listing only the LEADER rows of a user
func (suite *TeamMemberRepositoryTestSuite) TestListLeaderships() {
	user := suite.createUser()
	led := suite.createTeam(user, nil)
	suite.createMembership(led, user, models.TeamRoleLeader)

	otherOwner := suite.createUser()
	joined := suite.createTeam(otherOwner, nil)
	suite.createMembership(joined, otherOwner, models.TeamRoleLeader)
	suite.createMembership(joined, user, models.TeamRoleMember)

	leaderships, err := suite.repo.ListLeaderships(user.ID)

	suite.NoError(err)
	suite.Len(leaderships, 1)
	suite.Equal(led.ID, leaderships[0].TeamID)
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
