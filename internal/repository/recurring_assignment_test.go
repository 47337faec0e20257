//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"pulso-backend/internal/database/models"
	"pulso-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RecurringAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RecurringAssignmentRepository

	employee *models.Employee
	sector   *models.Sector
	shift    *models.Shift
}

func (suite *RecurringAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRecurringAssignmentRepository(suite.baseTestSuite.DB)
}

func (suite *RecurringAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RecurringAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.employee = testutils.NewEmployeeFactory().Create()
	suite.sector = testutils.NewSectorFactory().Create()
	suite.shift = testutils.NewShiftFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.sector).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.shift).Error)
}

func (suite *RecurringAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecurringAssignmentRepositoryTestSuite) TestCreateRoundTripsWeekdaySet() {
	assignment := testutils.NewRecurringAssignmentFactory().WithWeekdays(
		suite.employee.ID, suite.sector.ID, suite.shift.ID, []int{1, 3, 5},
	)

	err := suite.repo.Create(assignment)
	suite.NoError(err)

	found, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal([]int{1, 3, 5}, []int(found.Weekdays))
	suite.Equal(suite.sector.Name, found.Sector.Name)
	suite.Equal(suite.shift.Name, found.Shift.Name)
}

func (suite *RecurringAssignmentRepositoryTestSuite) TestGetByEmployee() {
	factory := testutils.NewRecurringAssignmentFactory()

	otherEmployee := testutils.NewEmployeeFactory().WithName("Joao Santos")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherEmployee).Error)

	mine := factory.Create(suite.employee.ID, suite.sector.ID, suite.shift.ID)
	theirs := factory.Create(otherEmployee.ID, suite.sector.ID, suite.shift.ID)
	suite.Require().NoError(suite.repo.Create(mine))
	suite.Require().NoError(suite.repo.Create(theirs))

	found, err := suite.repo.GetByEmployee(suite.employee.ID)
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(mine.ID, found[0].ID)
}

func (suite *RecurringAssignmentRepositoryTestSuite) TestGetByEmployeeAndShift() {
	factory := testutils.NewRecurringAssignmentFactory()

	otherShift := testutils.NewShiftFactory().WithTimes("13:00", "21:00")
	otherSector := testutils.NewSectorFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherShift).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherSector).Error)

	morningHere := factory.WithWeekdays(suite.employee.ID, suite.sector.ID, suite.shift.ID, []int{1, 2})
	morningThere := factory.WithWeekdays(suite.employee.ID, otherSector.ID, suite.shift.ID, []int{4, 5})
	evening := factory.Create(suite.employee.ID, suite.sector.ID, otherShift.ID)
	suite.Require().NoError(suite.repo.Create(morningHere))
	suite.Require().NoError(suite.repo.Create(morningThere))
	suite.Require().NoError(suite.repo.Create(evening))

	found, err := suite.repo.GetByEmployeeAndShift(suite.employee.ID, suite.shift.ID)
	suite.NoError(err)
	suite.Len(found, 2)
	for _, a := range found {
		suite.Equal(suite.shift.ID, a.ShiftID)
	}
}

func (suite *RecurringAssignmentRepositoryTestSuite) TestGetAllPreloadsRelations() {
	assignment := testutils.NewRecurringAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	found, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(suite.employee.Name, found[0].Employee.Name)
	suite.Equal(suite.sector.Name, found[0].Sector.Name)
	suite.Equal(suite.shift.StartTime, found[0].Shift.StartTime)
}

func (suite *RecurringAssignmentRepositoryTestSuite) TestDeleteIsIdempotent() {
	assignment := testutils.NewRecurringAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID)
	suite.Require().NoError(suite.repo.Create(assignment))

	suite.NoError(suite.repo.Delete(assignment.ID))

	_, err := suite.repo.GetByID(assignment.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	suite.NoError(suite.repo.Delete(assignment.ID))
	suite.NoError(suite.repo.Delete(uuid.New()))
}

func TestRecurringAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringAssignmentRepositoryTestSuite))
}
