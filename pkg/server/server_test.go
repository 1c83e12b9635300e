package server_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/DrinkMenu/configs"
	"droscher.com/DrinkMenu/mocks"
	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/auth"
	"droscher.com/DrinkMenu/pkg/health"
	"droscher.com/DrinkMenu/pkg/integrations"
	"droscher.com/DrinkMenu/pkg/inventory"
	"droscher.com/DrinkMenu/pkg/model"
	"droscher.com/DrinkMenu/pkg/repository"
	"droscher.com/DrinkMenu/pkg/server"
	"droscher.com/DrinkMenu/pkg/server/rest"
	"droscher.com/DrinkMenu/pkg/textfilter"
)

const loginPassword = "hunter2"

type stubSubscriptions struct {
	served int
}

func (s *stubSubscriptions) ServeWS(c *gin.Context) {
	s.served++
	c.Status(http.StatusSwitchingProtocols)
}

type ServerTestSuite struct {
	suite.Suite
	brandRepo     *mocks.BrandRepository
	recipeRepo    *mocks.RecipeRepository
	notifier      *mocks.Notifier
	pinger        *mocks.Pinger
	untappd       *mocks.Integration
	other         *mocks.Integration
	subscriptions *stubSubscriptions
	authManager   *auth.Manager
	observedLogs  *observer.ObservedLogs
	server        *server.Server
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	conf := &configs.Config{Auth: configs.Auth{
		SecretKey:     "secret",
		LoginPassword: loginPassword,
		CookieName:    "AUTH_TOKEN",
		RenewAfter:    5 * time.Minute,
		LoginInterval: time.Hour,
		LoginBurst:    2,
	}}

	suite.brandRepo = mocks.NewBrandRepository(suite.T())
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.notifier = mocks.NewNotifier(suite.T())
	suite.pinger = mocks.NewPinger(suite.T())
	suite.untappd = mocks.NewIntegration(suite.T())
	suite.other = mocks.NewIntegration(suite.T())
	suite.subscriptions = &stubSubscriptions{}
	suite.authManager = auth.NewAuthManager(conf, logger)

	service := inventory.NewService(suite.brandRepo, suite.recipeRepo, suite.notifier, logger)
	brandIntegrations := map[string]integrations.Integration{"untappd_web": suite.untappd, "other": suite.other}

	suite.server = server.NewServer(suite.authManager, suite.subscriptions, health.NewChecker(suite.pinger, logger),
		prometheus.NewRegistry(), logger, server.Handlers{
			Brands:      server.NewBrandHandler(service, logger),
			Recipes:     server.NewRecipeHandler(service, logger),
			Sessions:    server.NewSessionHandler(suite.authManager, logger),
			Suggestions: server.NewSuggestionHandler(brandIntegrations, logger),
		})
}

func (suite *ServerTestSuite) sessionCookie() *http.Cookie {
	token, err := suite.authManager.Tokens().IssueFromPassword(base64.StdEncoding.EncodeToString([]byte(loginPassword)))
	suite.Require().NoError(err)

	return &http.Cookie{Name: "AUTH_TOKEN", Value: token.Value}
}

func (suite *ServerTestSuite) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	suite.server.Router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerTestSuite) assertError(recorder *httptest.ResponseRecorder, status int, message string) {
	suite.Equal(status, recorder.Code)

	var body rest.ErrorResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	suite.Equal(rest.ErrorResponse{Status: status, Message: message}, body)
}

func (suite *ServerTestSuite) expectBrandBroadcast() {
	suite.notifier.EXPECT().Broadcast(inventory.BrandsPath, inventory.BrandsByTypePath, inventory.RecipesPath).Return().Once()
}

func newBrand(name, brandType string, inStock bool, price float64) *model.Brand {
	return &model.Brand{
		ID:             uuid.New(),
		Name:           name,
		NameNormalized: textfilter.Normalize(name),
		Type:           brandType,
		InStock:        inStock,
		Price:          price,
	}
}

func (suite *ServerTestSuite) TestListBrands_PassesQuery() {
	ipa := newBrand("Hazy IPA", "Beer", true, 6.5)
	ipa.AdditionalNotes = pointy.String("Tall can")

	suite.brandRepo.EXPECT().ListBrands(mock.Anything, repository.BrandFilter{
		OnlyInStock: true,
		Text:        textfilter.Build("ipa"),
	}).Return([]*model.Brand{ipa}, nil).Once()

	recorder := suite.do(http.MethodGet, "/api/beers-and-liquors?onlyInStock=true&filter=ipa", "")

	suite.Equal(http.StatusOK, recorder.Code)

	var brands []rest.BeerOrLiquor
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &brands))
	suite.Equal([]rest.BeerOrLiquor{{
		ID:              ipa.ID.String(),
		Name:            "Hazy IPA",
		NameNormalized:  "hazy ipa",
		Type:            "Beer",
		AdditionalNotes: pointy.String("Tall can"),
		InStock:         true,
		Price:           6.5,
	}}, brands)
}

func (suite *ServerTestSuite) TestListBrands_InvalidBoolean() {
	recorder := suite.do(http.MethodGet, "/api/beers-and-liquors-by-type?onlyOutOfStock=yes", "")

	suite.assertError(recorder, http.StatusBadRequest, "Invalid boolean value for param 'onlyOutOfStock'")
}

func (suite *ServerTestSuite) TestListBrandsByType() {
	suite.brandRepo.EXPECT().ListBrands(mock.Anything, repository.BrandFilter{OnlyOutOfStock: true}).Return([]*model.Brand{
		newBrand("Gin", "Liquor", false, 3),
		newBrand("Stout", "Beer", false, 5),
	}, nil).Once()

	recorder := suite.do(http.MethodGet, "/api/beers-and-liquors-by-type?onlyOutOfStock=true", "")

	suite.Equal(http.StatusOK, recorder.Code)

	var groups []rest.BeersAndLiquorsForType
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &groups))
	suite.Require().Len(groups, 2)
	suite.Equal("Beer", groups[0].Type)
	suite.Equal("Stout", groups[0].BeersAndLiquors[0].Name)
	suite.Equal("Liquor", groups[1].Type)
}

func (suite *ServerTestSuite) TestGetBrand_NotFound() {
	id := uuid.New()
	suite.brandRepo.EXPECT().GetBrand(mock.Anything, id).
		Return(nil, apperror.NotFound("BeerOrLiquor with ID %s not found", id)).Once()

	recorder := suite.do(http.MethodGet, "/api/beer-or-liquor/"+id.String(), "")

	suite.assertError(recorder, http.StatusNotFound, "BeerOrLiquor with ID "+id.String()+" not found")
}

func (suite *ServerTestSuite) TestGetBrand_InvalidID() {
	recorder := suite.do(http.MethodGet, "/api/beer-or-liquor/not-an-id", "")

	suite.assertError(recorder, http.StatusBadRequest, "Invalid ID provided")
}

func (suite *ServerTestSuite) TestStorageFailureIsHidden() {
	suite.brandRepo.EXPECT().ListBrands(mock.Anything, repository.BrandFilter{}).
		Return(nil, apperror.StorageUnavailable(errors.New("dial tcp: connection refused"))).Once()

	recorder := suite.do(http.MethodGet, "/api/beers-and-liquors", "")

	suite.assertError(recorder, http.StatusServiceUnavailable, "Unable to query database.")
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *ServerTestSuite) TestSecureRoutesRequireSession() {
	for _, request := range []struct{ method, target string }{
		{http.MethodPost, "/api/secure/beer-or-liquor/" + uuid.NewString() + "/mark-in-stock/true"},
		{http.MethodPut, "/api/secure/beer-or-liquor"},
		{http.MethodDelete, "/api/secure/mixed-drink/" + uuid.NewString()},
		{http.MethodGet, "/api/secure/brand-suggestions?query=ipa"},
	} {
		recorder := suite.do(request.method, request.target, "", &http.Cookie{Name: "AUTH_TOKEN", Value: "forged"})

		suite.assertError(recorder, http.StatusForbidden, "Forbidden")
	}
}

func (suite *ServerTestSuite) TestSetStock() {
	id := uuid.New()
	suite.brandRepo.EXPECT().SetBrandStock(mock.Anything, id, false).Return(nil).Once()
	suite.expectBrandBroadcast()

	recorder := suite.do(http.MethodPost, "/api/secure/beer-or-liquor/"+id.String()+"/mark-in-stock/false", "", suite.sessionCookie())

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *ServerTestSuite) TestSetStock_InvalidFlag() {
	recorder := suite.do(http.MethodPost, "/api/secure/beer-or-liquor/"+uuid.NewString()+"/mark-in-stock/maybe", "", suite.sessionCookie())

	suite.assertError(recorder, http.StatusBadRequest, ":flag parameter must be a boolean ('true' or 'false')")
}

func (suite *ServerTestSuite) TestSaveBrand_Insert() {
	id := uuid.New()
	suite.brandRepo.EXPECT().AddBrand(mock.Anything, mock.MatchedBy(func(brand *model.Brand) bool {
		return brand.ID == uuid.Nil && brand.Name == "Dry/Gin" && brand.NameNormalized == `dry\gin`
	})).RunAndReturn(func(_ context.Context, brand *model.Brand) error {
		brand.ID = id

		return nil
	}).Once()
	suite.expectBrandBroadcast()

	recorder := suite.do(http.MethodPut, "/api/secure/beer-or-liquor",
		`{"name":"Dry/Gin","type":"Liquor","inStock":true,"price":3.25}`, suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"`+id.String()+`"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestSaveBrand_Update() {
	id := uuid.New()
	suite.brandRepo.EXPECT().UpdateBrand(mock.Anything, mock.MatchedBy(func(brand *model.Brand) bool {
		return brand.ID == id && brand.Price == 4
	})).Return(nil).Once()
	suite.expectBrandBroadcast()

	recorder := suite.do(http.MethodPut, "/api/secure/beer-or-liquor/"+id.String(),
		`{"name":"Porter","type":"Beer","price":4}`, suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"`+id.String()+`"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestSaveBrand_MalformedBody() {
	recorder := suite.do(http.MethodPut, "/api/secure/beer-or-liquor", `{"name":`, suite.sessionCookie())

	suite.assertError(recorder, http.StatusBadRequest, apperror.ValidationFailedMessage)
}

func (suite *ServerTestSuite) TestSaveBrand_ValidationFailed() {
	recorder := suite.do(http.MethodPut, "/api/secure/beer-or-liquor", `{"name":"Stout","price":-1}`, suite.sessionCookie())

	suite.assertError(recorder, http.StatusBadRequest, apperror.ValidationFailedMessage)
}

func (suite *ServerTestSuite) TestDeleteBrand() {
	id := uuid.New()
	suite.brandRepo.EXPECT().DeleteBrand(mock.Anything, id).Return(nil).Once()
	suite.expectBrandBroadcast()

	recorder := suite.do(http.MethodDelete, "/api/secure/beer-or-liquor/"+id.String(), "", suite.sessionCookie())

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *ServerTestSuite) TestListRecipes() {
	dryGin := newBrand("Gin", "Liquor", true, 3.235)
	tonic := newBrand("Tonic", "Mixer", false, 1)
	recipe := &model.Recipe{
		ID:             uuid.New(),
		Name:           "Gin & Tonic",
		NameNormalized: "gin & tonic",
		RequiredBeersOrLiquors: []model.RecipeIngredient{
			{BrandID: dryGin.ID, Count: 2},
			{BrandID: tonic.ID, Count: 1},
		},
	}

	suite.recipeRepo.EXPECT().ListRecipes(mock.Anything).Return([]*model.Recipe{recipe}, nil).Once()
	suite.brandRepo.EXPECT().GetBrandsByIDs(mock.Anything, []uuid.UUID{dryGin.ID, tonic.ID}).
		Return(map[uuid.UUID]*model.Brand{dryGin.ID: dryGin, tonic.ID: tonic}, nil).Once()

	recorder := suite.do(http.MethodGet, "/api/mixed-drinks?onlyInStock=false&filter=tonic", "")

	suite.Equal(http.StatusOK, recorder.Code)

	var recipes []rest.MixedDrinkWithIngredients
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &recipes))
	suite.Require().Len(recipes, 1)
	suite.InDelta(7.47, recipes[0].Price, 0.0001)
	suite.Require().Len(recipes[0].RequiredBeersOrLiquors, 2)
	suite.Equal("Gin", recipes[0].RequiredBeersOrLiquors[0].Name)
	suite.Equal(2, recipes[0].RequiredBeersOrLiquors[0].Count)
	suite.False(recipes[0].RequiredBeersOrLiquors[1].InStock)
}

func (suite *ServerTestSuite) TestGetRecipe() {
	brandID := uuid.New()
	recipe := &model.Recipe{
		ID:                     uuid.New(),
		Name:                   "Shandy",
		NameNormalized:         "shandy",
		RequiredBeersOrLiquors: []model.RecipeIngredient{{BrandID: brandID, Count: 1}},
	}
	suite.recipeRepo.EXPECT().GetRecipe(mock.Anything, recipe.ID).Return(recipe, nil).Once()

	recorder := suite.do(http.MethodGet, "/api/mixed-drink/"+recipe.ID.String(), "")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"`+recipe.ID.String()+`","name":"Shandy","nameNormalized":"shandy",`+
		`"requiredBeersOrLiquors":[{"id":"`+brandID.String()+`","count":1}]}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestSaveRecipe_Insert() {
	id := uuid.New()
	brandID := uuid.New()
	suite.recipeRepo.EXPECT().AddRecipe(mock.Anything, mock.MatchedBy(func(recipe *model.Recipe) bool {
		return recipe.Name == "Shandy" && len(recipe.RequiredBeersOrLiquors) == 1 &&
			recipe.RequiredBeersOrLiquors[0].BrandID == brandID && recipe.RequiredBeersOrLiquors[0].Count == 2
	})).RunAndReturn(func(_ context.Context, recipe *model.Recipe) error {
		recipe.ID = id

		return nil
	}).Once()
	suite.notifier.EXPECT().Broadcast(inventory.RecipesPath).Return().Once()

	recorder := suite.do(http.MethodPut, "/api/secure/mixed-drink",
		`{"name":"Shandy","requiredBeersOrLiquors":[{"id":"`+brandID.String()+`","count":2}]}`, suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"`+id.String()+`"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestSaveRecipe_InvalidIngredientID() {
	recorder := suite.do(http.MethodPut, "/api/secure/mixed-drink",
		`{"name":"Shandy","requiredBeersOrLiquors":[{"id":"nope","count":2}]}`, suite.sessionCookie())

	suite.assertError(recorder, http.StatusBadRequest, "Invalid ID provided")
}

func (suite *ServerTestSuite) TestDeleteRecipe() {
	id := uuid.New()
	suite.recipeRepo.EXPECT().DeleteRecipe(mock.Anything, id).Return(nil).Once()
	suite.notifier.EXPECT().Broadcast(inventory.RecipesPath).Return().Once()

	recorder := suite.do(http.MethodDelete, "/api/secure/mixed-drink/"+id.String(), "", suite.sessionCookie())

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *ServerTestSuite) TestLogin() {
	request := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	request.Header.Set("x-pw", base64.StdEncoding.EncodeToString([]byte(loginPassword)))

	recorder := httptest.NewRecorder()
	suite.server.Router.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("AUTH_TOKEN", cookies[0].Name)
	suite.True(cookies[0].HttpOnly)
	suite.True(cookies[0].Secure)
	suite.Equal(http.SameSiteNoneMode, cookies[0].SameSite)
	suite.True(suite.authManager.Tokens().Verify(cookies[0].Value))
}

func (suite *ServerTestSuite) TestLogin_WrongPassword() {
	request := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	request.Header.Set("x-pw", base64.StdEncoding.EncodeToString([]byte("letmein")))

	recorder := httptest.NewRecorder()
	suite.server.Router.ServeHTTP(recorder, request)

	suite.assertError(recorder, http.StatusUnauthorized, "Incorrect password")
	suite.Empty(recorder.Result().Cookies())
}

func (suite *ServerTestSuite) TestLogin_RateLimited() {
	suite.do(http.MethodGet, "/api/login", "")
	suite.do(http.MethodGet, "/api/login", "")

	recorder := suite.do(http.MethodGet, "/api/login", "")

	suite.assertError(recorder, http.StatusTooManyRequests, "Too many login attempts")
}

func (suite *ServerTestSuite) TestLogout() {
	recorder := suite.do(http.MethodGet, "/api/logout", "", suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Empty(cookies[0].Value)
	suite.Negative(cookies[0].MaxAge)
}

func (suite *ServerTestSuite) TestVerifyToken() {
	recorder := suite.do(http.MethodGet, "/api/verify-token", "", suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServerTestSuite) TestVerifyToken_Invalid() {
	recorder := suite.do(http.MethodGet, "/api/verify-token", "", &http.Cookie{Name: "AUTH_TOKEN", Value: "forged"})

	suite.assertError(recorder, http.StatusUnauthorized, "Invalid Session Token")

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Negative(cookies[0].MaxAge)
}

func (suite *ServerTestSuite) TestBrandSuggestions_SkipsFailingIntegrations() {
	suite.other.EXPECT().FindBrands("ipa").Return(nil, errors.New("timeout")).Once()
	suite.untappd.EXPECT().FindBrands("ipa").Return([]model.BrandSuggestion{{
		Name:           "Hazy IPA",
		Brewery:        "Local Brewing",
		ABV:            pointy.Float64(6.2),
		ExternalID:     pointy.Uint64(4591477),
		ExternalSource: "untappd",
	}}, nil).Once()

	recorder := suite.do(http.MethodGet, "/api/secure/brand-suggestions?query=ipa", "", suite.sessionCookie())

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[{"name":"Hazy IPA","brewery":"Local Brewing","abv":6.2,"externalId":4591477,"externalSource":"untappd"}]`,
		recorder.Body.String())
	suite.Equal(1, suite.observedLogs.FilterMessage("failed brand search").Len())
}

func (suite *ServerTestSuite) TestBrandSuggestions_MissingQuery() {
	recorder := suite.do(http.MethodGet, "/api/secure/brand-suggestions", "", suite.sessionCookie())

	suite.assertError(recorder, http.StatusBadRequest, "Missing value for param 'query'")
}

func (suite *ServerTestSuite) TestWebSocketRoute() {
	recorder := suite.do(http.MethodGet, "/api", "")

	suite.Equal(http.StatusSwitchingProtocols, recorder.Code)
	suite.Equal(1, suite.subscriptions.served)
}

func (suite *ServerTestSuite) TestHealthcheckAndMetrics() {
	suite.pinger.EXPECT().Ping(mock.Anything).Return(nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/healthcheck", "").Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/metrics", "").Code)
}

func (suite *ServerTestSuite) TestNotFound() {
	recorder := suite.do(http.MethodGet, "/api/unknown", "")

	suite.assertError(recorder, http.StatusNotFound, "Not Found")
}

func (suite *ServerTestSuite) TestRequestsAreLogged() {
	suite.do(http.MethodGet, "/api/beer-or-liquor/not-an-id", "")

	logs := suite.observedLogs.FilterMessage("served request").All()
	suite.Require().Len(logs, 1)
	suite.Equal("/api/beer-or-liquor/not-an-id", logs[0].ContextMap()["path"])
	suite.EqualValues(http.StatusBadRequest, logs[0].ContextMap()["status"])
	suite.NotEmpty(logs[0].ContextMap()["requestId"])
}
