package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)
	s.echo = newTestEcho()
	s.userID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) TestListCategories() {
	s.mockService.EXPECT().ListCategories(gomock.Any(), s.userID).
		Return([]models.Category{{ID: uuid.New(), Name: "Comida"}}, nil)

	c, rec := newAuthContext(s.echo, http.MethodGet, "/api/v1/categories", nil, s.userID)
	s.Require().NoError(s.handler.ListCategories(c))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(1, response.Total)
}

func (s *CategoryHandlerSuite) TestCreateCategory() {
	s.mockService.EXPECT().CreateCategory(gomock.Any(), s.userID, gomock.Any()).
		Return(&models.Category{ID: uuid.New(), Name: "Mascotas", Color: "#00ff00"}, nil)

	body := map[string]interface{}{"name": "Mascotas", "color": "#00ff00"}
	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", body, s.userID)
	s.Require().NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_InvalidColor() {
	body := map[string]interface{}{"name": "Mascotas", "color": "green"}
	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", body, s.userID)
	s.Require().NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_Duplicate() {
	s.mockService.EXPECT().CreateCategory(gomock.Any(), s.userID, gomock.Any()).Return(nil, services.ErrDuplicateCategory)

	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", map[string]interface{}{"name": "Comida"}, s.userID)
	s.Require().NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CATEGORY_001", errorCode(s.T(), rec))
}

func (s *CategoryHandlerSuite) TestSuggestCategory() {
	categoryID := uuid.New()
	s.mockService.EXPECT().SuggestCategory(gomock.Any(), s.userID, "UBER EATS *PEDIDO").
		Return(&dto.CategorySuggestion{Description: "UBER EATS *PEDIDO", CategoryID: &categoryID, Name: "Comida", Confidence: 0.95}, nil)

	target := "/api/v1/categories/suggest?description=" + url.QueryEscape("UBER EATS *PEDIDO")
	c, rec := newAuthContext(s.echo, http.MethodGet, target, nil, s.userID)
	s.Require().NoError(s.handler.SuggestCategory(c))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategorySuggestion
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Comida", response.Name)
	s.Equal(&categoryID, response.CategoryID)
}

func (s *CategoryHandlerSuite) TestSuggestCategory_MissingDescription() {
	c, rec := newAuthContext(s.echo, http.MethodGet, "/api/v1/categories/suggest?description=++", nil, s.userID)
	s.Require().NoError(s.handler.SuggestCategory(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_002", errorCode(s.T(), rec))
}
