//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"pulso-backend/internal/database/models"
	"pulso-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OverrideAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OverrideAssignmentRepository

	employee *models.Employee
	sector   *models.Sector
	shift    *models.Shift
}

func (suite *OverrideAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOverrideAssignmentRepository(suite.baseTestSuite.DB)
}

func (suite *OverrideAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OverrideAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.employee = testutils.NewEmployeeFactory().Create()
	suite.sector = testutils.NewSectorFactory().Create()
	suite.shift = testutils.NewShiftFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.sector).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.shift).Error)
}

func (suite *OverrideAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestCreateAndGetByID() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	override := testutils.NewOverrideAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)

	err := suite.repo.Create(override)
	suite.NoError(err)

	found, err := suite.repo.GetByID(override.ID)
	suite.NoError(err)
	suite.Equal(override.ID, found.ID)
	suite.Equal(suite.sector.Name, found.Sector.Name)
	suite.Equal(suite.shift.Name, found.Shift.Name)
	suite.True(found.Date.Equal(date))
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestUniqueIndexRejectsDuplicateTriple() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	factory := testutils.NewOverrideAssignmentFactory()

	first := factory.Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)
	suite.Require().NoError(suite.repo.Create(first))

	// Same employee, date and shift in a different sector hits the unique index.
	otherSector := testutils.NewSectorFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherSector).Error)

	duplicate := factory.Create(suite.employee.ID, otherSector.ID, suite.shift.ID, date)
	err := suite.repo.Create(duplicate)
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestGetForShift() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	override := testutils.NewOverrideAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)
	suite.Require().NoError(suite.repo.Create(override))

	found, err := suite.repo.GetForShift(suite.employee.ID, date, suite.shift.ID)
	suite.NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(override.ID, found.ID)
	suite.Equal(suite.sector.ID, found.Sector.ID)

	// Absent triple yields nil without an error.
	missing, err := suite.repo.GetForShift(suite.employee.ID, date.AddDate(0, 0, 1), suite.shift.ID)
	suite.NoError(err)
	suite.Nil(missing)
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestGetByEmployeeAndDate() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	factory := testutils.NewOverrideAssignmentFactory()

	secondShift := testutils.NewShiftFactory().WithTimes("13:00", "21:00")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(secondShift).Error)

	morning := factory.Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)
	evening := factory.Create(suite.employee.ID, suite.sector.ID, secondShift.ID, date)
	otherDay := factory.Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date.AddDate(0, 0, 1))
	suite.Require().NoError(suite.repo.Create(morning))
	suite.Require().NoError(suite.repo.Create(evening))
	suite.Require().NoError(suite.repo.Create(otherDay))

	found, err := suite.repo.GetByEmployeeAndDate(suite.employee.ID, date)
	suite.NoError(err)
	suite.Len(found, 2)
	for _, o := range found {
		suite.True(o.Date.Equal(date))
		suite.NotEmpty(o.Shift.Name)
	}
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestGetByDatePreloadsRelations() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	override := testutils.NewOverrideAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)
	suite.Require().NoError(suite.repo.Create(override))

	found, err := suite.repo.GetByDate(date)
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(suite.employee.Name, found[0].Employee.Name)
	suite.Equal(suite.sector.Color, found[0].Sector.Color)
	suite.Equal(suite.shift.StartTime, found[0].Shift.StartTime)
}

func (suite *OverrideAssignmentRepositoryTestSuite) TestDeleteIsIdempotent() {
	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	override := testutils.NewOverrideAssignmentFactory().Create(suite.employee.ID, suite.sector.ID, suite.shift.ID, date)
	suite.Require().NoError(suite.repo.Create(override))

	suite.NoError(suite.repo.Delete(override.ID))

	_, err := suite.repo.GetByID(override.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	// Deleting again, or deleting an ID that never existed, is not an error.
	suite.NoError(suite.repo.Delete(override.ID))
	suite.NoError(suite.repo.Delete(uuid.New()))
}

func TestOverrideAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OverrideAssignmentRepositoryTestSuite))
}
