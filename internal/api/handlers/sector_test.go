package handlers_test

import (
	"net/http"
	"testing"

	"pulso-backend/internal/api/handlers"
	apperrors "pulso-backend/internal/errors"
	"pulso-backend/internal/mocks"
	"pulso-backend/internal/service"
	"pulso-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SectorHandlerTestSuite defines the test suite for SectorHandler
type SectorHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSectorServiceInterface
	handler     *handlers.SectorHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SectorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSectorServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewSectorHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	router := suite.httpSuite.Router
	router.GET("/sectors", suite.handler.ListSectors)
	router.GET("/sectors/:id", suite.handler.GetSector)
	router.POST("/sectors", suite.handler.CreateSector)
	router.PUT("/sectors/:id", suite.handler.UpdateSector)
	router.DELETE("/sectors/:id", suite.handler.DeleteSector)
}

// TearDownTest cleans up after each test
func (suite *SectorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SectorHandlerTestSuite) TestListSectors_ActiveFilter() {
	suite.mockService.EXPECT().GetAll(true).Return([]service.SectorResponse{
		{ID: uuid.New(), Name: "Checkout", Active: true},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/sectors?active=true", nil)

	var got []service.SectorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Checkout", got[0].Name)
}

func (suite *SectorHandlerTestSuite) TestGetSector_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrSectorNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/sectors/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "sector not found")
}

func (suite *SectorHandlerTestSuite) TestCreateSector_Created() {
	resp := &service.SectorResponse{ID: uuid.New(), Name: "Checkout", Color: "#1D4ED8", Active: true}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(resp, nil)

	requestBody := map[string]interface{}{
		"name":  "Checkout",
		"color": "#1D4ED8",
	}
	recorder := suite.httpSuite.MakeRequest("POST", "/sectors", requestBody)

	var got service.SectorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), resp.ID, got.ID)
}

func (suite *SectorHandlerTestSuite) TestCreateSector_DuplicateName_Conflict() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewAlreadyExistsError("sector", "with this name"))

	requestBody := map[string]interface{}{
		"name":  "Checkout",
		"color": "#1D4ED8",
	}
	recorder := suite.httpSuite.MakeRequest("POST", "/sectors", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "sector already exists with this name")
}

func (suite *SectorHandlerTestSuite) TestUpdateSector_Success() {
	id := uuid.New()
	active := false
	suite.mockService.EXPECT().Update(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdateSectorRequest) (*service.SectorResponse, error) {
			assert.NotNil(suite.T(), req.Active)
			assert.False(suite.T(), *req.Active)
			return &service.SectorResponse{ID: id, Name: "Checkout", Active: active}, nil
		})

	requestBody := map[string]interface{}{"active": false}
	recorder := suite.httpSuite.MakeRequest("PUT", "/sectors/"+id.String(), requestBody)

	var got service.SectorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.False(suite.T(), got.Active)
}

func (suite *SectorHandlerTestSuite) TestDeleteSector_NoContent() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/sectors/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestSectorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SectorHandlerTestSuite))
}
