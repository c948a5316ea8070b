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

// ClassroomRepositoryTestSuite tests the ClassroomRepository
type ClassroomRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClassroomRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ClassroomRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewClassroomRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ClassroomRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClassroomRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ClassroomRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ClassroomRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateWithAdmin tests that class creation also inserts the admin membership
func (suite *ClassroomRepositoryTestSuite) TestCreateWithAdmin() {
	owner := suite.createUser()
	class := testutils.NewClassroomFactory().Create(owner.ID)

	err := suite.repo.CreateWithAdmin(class)

	suite.NoError(err)
	isMember, err := suite.repo.IsMember(class.ID, owner.ID)
	suite.NoError(err)
	suite.True(isMember)

	var m models.ClassMember
	suite.NoError(suite.baseTestSuite.DB.
		First(&m, "class_id = ? AND user_id = ?", class.ID, owner.ID).Error)
	suite.Equal(models.ClassRoleAdmin, m.Role)
}

// TestGetByCodeAndCodeExists tests the join-code lookups
func (suite *ClassroomRepositoryTestSuite) TestGetByCodeAndCodeExists() {
	owner := suite.createUser()
	class := testutils.NewClassroomFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithAdmin(class))

	retrieved, err := suite.repo.GetByCode(class.Code)
	suite.NoError(err)
	suite.Equal(class.ID, retrieved.ID)

	exists, err := suite.repo.CodeExists(class.Code)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.CodeExists("ZZZZZZ")
	suite.NoError(err)
	suite.False(exists)

	_, err = suite.repo.GetByCode("ZZZZZZ")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestAddMemberAndListForUser tests joining a class and listing memberships
func (suite *ClassroomRepositoryTestSuite) TestAddMemberAndListForUser() {
	owner := suite.createUser()
	class := testutils.NewClassroomFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithAdmin(class))
	student := suite.createUser()

	suite.NoError(suite.repo.AddMember(class.ID, student.ID, models.ClassRoleMember))

	isMember, err := suite.repo.IsMember(class.ID, student.ID)
	suite.NoError(err)
	suite.True(isMember)

	classes, err := suite.repo.ListForUser(student.ID)
	suite.NoError(err)
	suite.Len(classes, 1)
	suite.Equal(class.ID, classes[0].ID)
}

// TestRemoveMembersByUser tests removing a user from every class at once
func (suite *ClassroomRepositoryTestSuite) TestRemoveMembersByUser() {
	owner := suite.createUser()
	classA := testutils.NewClassroomFactory().Create(owner.ID)
	classB := testutils.NewClassroomFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithAdmin(classA))
	suite.NoError(suite.repo.CreateWithAdmin(classB))
	student := suite.createUser()
	suite.NoError(suite.repo.AddMember(classA.ID, student.ID, models.ClassRoleMember))
	suite.NoError(suite.repo.AddMember(classB.ID, student.ID, models.ClassRoleMember))

	suite.NoError(suite.repo.RemoveMembersByUser(student.ID))

	classes, err := suite.repo.ListForUser(student.ID)
	suite.NoError(err)
	suite.Len(classes, 0)

	// The owner memberships are untouched
	ownerClasses, err := suite.repo.ListForUser(owner.ID)
	suite.NoError(err)
	suite.Len(ownerClasses, 2)
}

// TestDeleteWithMembers tests that class dissolution removes all membership rows
func (suite *ClassroomRepositoryTestSuite) TestDeleteWithMembers() {
	owner := suite.createUser()
	class := testutils.NewClassroomFactory().Create(owner.ID)
	suite.NoError(suite.repo.CreateWithAdmin(class))
	suite.NoError(suite.repo.AddMember(class.ID, suite.createUser().ID, models.ClassRoleMember))

	err := suite.repo.DeleteWithMembers(class.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(class.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ClassMember{}).
		Where("class_id = ?", class.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestClassroomRepositoryTestSuite runs the test suite
func TestClassroomRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClassroomRepositoryTestSuite))
}
