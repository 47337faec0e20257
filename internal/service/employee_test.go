package service_test

import (
	"testing"

	"pulso-backend/internal/database/models"
	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/mocks"
	"pulso-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockEmployeeRepositoryInterface
	service  *service.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewEmployeeService(suite.mockRepo, validator.New())
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	suite.mockRepo.EXPECT().GetByRegistration("C12345").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		suite.Equal("Maria Silva", employee.Name)
		suite.Equal("C12345", employee.Registration)
		suite.Equal(models.RoleAssistant, employee.Role)
		suite.True(employee.Active)
		employee.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.Create(&service.CreateEmployeeRequest{
		Name:         "Maria Silva",
		Registration: "C12345",
		Role:         models.RoleAssistant,
	})
	suite.Require().NoError(err)
	suite.Equal("Maria Silva", resp.Name)
	suite.NotEqual(uuid.Nil, resp.ID)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateRegistration() {
	suite.mockRepo.EXPECT().GetByRegistration("C12345").Return(&models.Employee{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Maria Silva",
		Registration: "C12345",
		Role:         models.RoleAssistant,
		Active:       true,
	}, nil)

	_, err := suite.service.Create(&service.CreateEmployeeRequest{
		Name:         "Other Person",
		Registration: "C12345",
		Role:         models.RoleAssistant,
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.Contains(err.Error(), "registration")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InvalidRole() {
	_, err := suite.service.Create(&service.CreateEmployeeRequest{
		Name:         "Maria Silva",
		Registration: "C12345",
		Role:         "supervisor",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(id)
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
