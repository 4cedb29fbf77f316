package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"onemorning/internal/auth"
	"onemorning/internal/common/clock"
	"onemorning/internal/common/uuid"
	"onemorning/internal/models"
	gameMocks "onemorning/internal/repositories/game/mocks"
	gameService "onemorning/internal/services/game"
	serviceMocks "onemorning/internal/services/game/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockService  *serviceMocks.MockService
	mockGameRepo *gameMocks.MockRepository
	issuer       *auth.Issuer
	router       *gin.Engine

	playerID string
	token    string
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)

	issuer, err := auth.New(&auth.Config{
		Secret:        []byte("test-secret"),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.issuer = issuer

	playerID, token, err := issuer.IssueGuest("Alice")
	s.Require().NoError(err)
	s.playerID = playerID
	s.token = token

	handler, err := New(&Config{
		GameService: s.mockService,
		GameRepo:    s.mockGameRepo,
		Issuer:      issuer,
		Logger:      zap.NewNop(),
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.Register(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// do performs an authenticated request and returns the recorder
func (s *HandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) testGame() *models.Game {
	return &models.Game{
		ID:          "game-id",
		Status:      models.GameStatusWaiting,
		HostID:      s.playerID,
		PlayerCount: 4,
		Players: []*models.Player{
			{ID: s.playerID, Name: "Alice", IsHost: true, IsAlive: true},
		},
	}
}

func (s *HandlerTestSuite) TestCreateGuest() {
	body, _ := json.Marshal(guestRequest{Name: "Bob"})
	req := httptest.NewRequest(http.MethodPost, "/auth/guest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp guestResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp.PlayerID)
	s.NotEmpty(resp.Token)
	s.Equal("Bob", resp.Name)

	// The minted token must pass verification
	claims, err := s.issuer.Verify(resp.Token)
	s.Require().NoError(err)
	s.Equal(resp.PlayerID, claims.PlayerID)
}

func (s *HandlerTestSuite) TestCreateGuestRequiresName() {
	req := httptest.NewRequest(http.MethodPost, "/auth/guest", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAuthRequired() {
	req := httptest.NewRequest(http.MethodGet, "/games", nil)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestAuthAcceptsQueryToken() {
	s.mockService.EXPECT().ListOpenGames(gomock.Any(), gomock.Any()).
		Return(&gameService.ListOpenGamesOutput{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/games?token="+s.token, nil)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestCreateGame() {
	s.mockService.EXPECT().CreateGame(gomock.Any(), &gameService.CreateGameInput{
		HostID:      s.playerID,
		HostName:    "Alice",
		PlayerCount: 4,
	}).Return(&gameService.CreateGameOutput{Game: s.testGame()}, nil)

	rec := s.do(http.MethodPost, "/games", createGameRequest{PlayerCount: 4})

	s.Equal(http.StatusCreated, rec.Code)

	var view gameView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal("game-id", view.ID)
	s.Equal(models.GameStatusWaiting, view.Status)
}

func (s *HandlerTestSuite) TestCreateGameUnsupportedCount() {
	s.mockService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrUnsupportedPlayerCount)

	rec := s.do(http.MethodPost, "/games", createGameRequest{PlayerCount: 3})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestJoinGame() {
	s.mockService.EXPECT().JoinGame(gomock.Any(), &gameService.JoinGameInput{
		GameID:     "game-id",
		PlayerID:   s.playerID,
		PlayerName: "Alice",
	}).Return(&gameService.JoinGameOutput{Game: s.testGame()}, nil)

	rec := s.do(http.MethodPost, "/games/game-id/join", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGetGameNotFound() {
	s.mockService.EXPECT().GetGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrGameNotFound)

	rec := s.do(http.MethodGet, "/games/missing", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestStartGameNotHost() {
	s.mockService.EXPECT().StartGame(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrNotHost)

	rec := s.do(http.MethodPost, "/games/game-id/start", nil)

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *HandlerTestSuite) TestCastVoteWrongPhase() {
	s.mockService.EXPECT().CastVote(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrInvalidPhaseForOperation)

	rec := s.do(http.MethodPost, "/games/game-id/vote", castVoteRequest{TargetID: "p2"})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestUseAbility() {
	index := 0
	s.mockService.EXPECT().UseAbility(gomock.Any(), &gameService.UseAbilityInput{
		GameID:          "game-id",
		PlayerID:        s.playerID,
		CenterCardIndex: &index,
	}).Return(&gameService.UseAbilityOutput{
		Reveal: &models.Reveal{
			Kind: models.RevealKindCenter,
			Role: models.RoleVillager,
		},
		Game: s.testGame(),
	}, nil)

	rec := s.do(http.MethodPost, "/games/game-id/ability", useAbilityRequest{CenterCardIndex: &index})

	s.Equal(http.StatusOK, rec.Code)

	var resp abilityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Reveal)
	s.Equal(models.RoleVillager, resp.Reveal.Role)
	s.Nil(resp.Special)
}

func (s *HandlerTestSuite) TestAcknowledgeRole() {
	s.mockService.EXPECT().AcknowledgeRole(gomock.Any(), &gameService.AcknowledgeRoleInput{
		GameID:   "game-id",
		PlayerID: s.playerID,
	}).Return(&gameService.AcknowledgeRoleOutput{
		Role:              models.RoleWerewolf,
		FellowWerewolfIDs: []string{"p2"},
		Game:              s.testGame(),
	}, nil)

	rec := s.do(http.MethodPost, "/games/game-id/ack", nil)

	s.Equal(http.StatusOK, rec.Code)

	var resp ackResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.RoleWerewolf, resp.Role)
	s.Equal([]string{"p2"}, resp.FellowWerewolfIDs)
}

func (s *HandlerTestSuite) TestGetReveals() {
	s.mockService.EXPECT().GetReveals(gomock.Any(), &gameService.GetRevealsInput{
		GameID:   "game-id",
		PlayerID: s.playerID,
	}).Return(&gameService.GetRevealsOutput{
		Reveals: []*models.Reveal{{ID: "r1", Role: models.RoleSeer}},
	}, nil)

	rec := s.do(http.MethodGet, "/games/game-id/reveals", nil)

	s.Equal(http.StatusOK, rec.Code)

	var reveals []*models.Reveal
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &reveals))
	s.Require().Len(reveals, 1)
	s.Equal("r1", reveals[0].ID)
}

func (s *HandlerTestSuite) TestLeaveGameDeleted() {
	s.mockService.EXPECT().LeaveGame(gomock.Any(), gomock.Any()).
		Return(&gameService.LeaveGameOutput{GameDeleted: true}, nil)

	rec := s.do(http.MethodPost, "/games/game-id/leave", nil)

	s.Equal(http.StatusOK, rec.Code)

	var resp leaveResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.GameDeleted)
	s.Nil(resp.Game)
}

func (s *HandlerTestSuite) TestTallyVotesConcurrentConflict() {
	s.mockService.EXPECT().TallyVotes(gomock.Any(), gomock.Any()).
		Return(nil, gameService.ErrConcurrentModification)

	rec := s.do(http.MethodPost, "/games/game-id/tally", nil)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestGetCurrentGameEmpty() {
	s.mockService.EXPECT().GetCurrentGame(gomock.Any(), &gameService.GetCurrentGameInput{
		PlayerID: s.playerID,
	}).Return(&gameService.GetCurrentGameOutput{}, nil)

	rec := s.do(http.MethodGet, "/games/current", nil)

	s.Equal(http.StatusOK, rec.Code)

	var resp currentGameResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Empty(resp.GameID)
	s.Nil(resp.Game)
}
