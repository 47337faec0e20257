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

// ShiftServiceTestSuite defines the test suite for ShiftService
type ShiftServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockShiftRepositoryInterface
	service  *service.ShiftService
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.service = service.NewShiftService(suite.mockRepo, validator.New())
}

func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftServiceTestSuite) TestCreateShift_Success() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(shift *models.Shift) error {
		suite.Equal("Morning", shift.Name)
		suite.Equal("09:00", shift.StartTime)
		suite.Equal("17:00", shift.EndTime)
		shift.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.Create(&service.CreateShiftRequest{
		Name:      "Morning",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	suite.Require().NoError(err)
	suite.Equal("Morning", resp.Name)
	suite.NotEqual(uuid.Nil, resp.ID)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_TimeWindowValidation() {
	testCases := []struct {
		name      string
		start     string
		end       string
		wantError error
	}{
		{name: "Start equals end", start: "09:00", end: "09:00", wantError: apperrors.ErrInvalidTimeRange},
		{name: "Start after end", start: "17:00", end: "09:00", wantError: apperrors.ErrInvalidTimeRange},
		{name: "Malformed start", start: "9am", end: "17:00"},
		{name: "Hour out of range", start: "24:00", end: "17:00"},
		{name: "Minute out of range", start: "09:60", end: "17:00"},
		{name: "Missing zero padding", start: "9:00", end: "17:00"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Create(&service.CreateShiftRequest{
				Name:      "Broken",
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			suite.Require().Error(err)
			if tc.wantError != nil {
				suite.ErrorIs(err, tc.wantError)
			} else {
				suite.True(apperrors.IsValidation(err))
			}
		})
	}
}

func (suite *ShiftServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(id)
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_RevalidatesWindow() {
	id := uuid.New()
	existing := &models.Shift{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Morning",
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	// moving the start past the end must be rejected before any write
	late := "18:00"
	_, err := suite.service.Update(id, &service.UpdateShiftRequest{StartTime: &late})
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_Success() {
	id := uuid.New()
	existing := &models.Shift{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Morning",
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	name := "Early"
	start := "06:00"
	resp, err := suite.service.Update(id, &service.UpdateShiftRequest{Name: &name, StartTime: &start})
	suite.Require().NoError(err)
	suite.Equal("Early", resp.Name)
	suite.Equal("06:00", resp.StartTime)
	suite.Equal("17:00", resp.EndTime)
}

func (suite *ShiftServiceTestSuite) TestGetAll() {
	suite.mockRepo.EXPECT().GetAll().Return([]models.Shift{
		{Name: "Morning", StartTime: "09:00", EndTime: "17:00"},
		{Name: "Evening", StartTime: "14:00", EndTime: "22:00"},
	}, nil)

	shifts, err := suite.service.GetAll()
	suite.Require().NoError(err)
	suite.Len(shifts, 2)
	suite.Equal("Morning", shifts[0].Name)
}

func (suite *ShiftServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)
	suite.ErrorIs(err, apperrors.ErrShiftNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
