//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"teammatch-backend/internal/database/models"
	"teammatch-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) createUser() *models.User {
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestListForUserPaging tests newest-first paging with the stable total
func (suite *NotificationRepositoryTestSuite) TestListForUserPaging() {
	user := suite.createUser()
	for i := 0; i < 5; i++ {
		n := testutils.NewNotificationFactory().Create(user.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(n).Error)
		time.Sleep(2 * time.Millisecond)
	}
	other := suite.createUser()
	suite.NoError(suite.baseTestSuite.DB.Create(
		testutils.NewNotificationFactory().Create(other.ID)).Error)

	firstPage, total, err := suite.repo.ListForUser(user.ID, 3, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(firstPage, 3)

	secondPage, total, err := suite.repo.ListForUser(user.ID, 3, 3)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(secondPage, 2)

	// Newest first: the first page starts strictly after the second page ends
	suite.True(firstPage[0].CreatedAt.After(secondPage[len(secondPage)-1].CreatedAt))
}

// TestCountUnread tests that read rows drop out of the unread count
func (suite *NotificationRepositoryTestSuite) TestCountUnread() {
	user := suite.createUser()
	read := testutils.NewNotificationFactory().Create(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(read).Error)
	unread := testutils.NewNotificationFactory().Create(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(unread).Error)

	suite.NoError(suite.repo.MarkRead(read.ID, user.ID))

	count, err := suite.repo.CountUnread(user.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestMarkRead tests the once-only, owner-only read stamp
func (suite *NotificationRepositoryTestSuite) TestMarkRead() {
	user := suite.createUser()
	n := testutils.NewNotificationFactory().Create(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(n).Error)

	suite.NoError(suite.repo.MarkRead(n.ID, user.ID))

	reloaded, err := suite.repo.GetByID(n.ID)
	suite.NoError(err)
	suite.NotNil(reloaded.ReadAt)

	// Marking again keeps the original stamp
	first := *reloaded.ReadAt
	suite.NoError(suite.repo.MarkRead(n.ID, user.ID))
	again, err := suite.repo.GetByID(n.ID)
	suite.NoError(err)
	suite.Equal(first.UnixMicro(), again.ReadAt.UnixMicro())
}

// TestMarkReadWrongOwner tests that another user's stamp attempt is a silent no-op
func (suite *NotificationRepositoryTestSuite) TestMarkReadWrongOwner() {
	user := suite.createUser()
	stranger := suite.createUser()
	n := testutils.NewNotificationFactory().Create(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(n).Error)

	suite.NoError(suite.repo.MarkRead(n.ID, stranger.ID))

	reloaded, err := suite.repo.GetByID(n.ID)
	suite.NoError(err)
	suite.Nil(reloaded.ReadAt)
}

// TestNotificationRepositoryTestSuite runs the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
