package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"onemorning/internal/auth"
	gameRepo "onemorning/internal/repositories/game"
	gameService "onemorning/internal/services/game"
)

// Context keys set by the auth middleware
const (
	ctxPlayerID   = "playerID"
	ctxPlayerName = "playerName"
)

// Typed errors
const (
	ErrNilConfig      = HandlerError("config cannot be nil")
	ErrNilGameService = HandlerError("game service cannot be nil")
	ErrNilGameRepo    = HandlerError("game repository cannot be nil")
	ErrNilIssuer      = HandlerError("token issuer cannot be nil")
	ErrNilLogger      = HandlerError("logger cannot be nil")
)

// HandlerError is a typed error
type HandlerError string

func (e HandlerError) Error() string {
	return string(e)
}

// Config holds configuration for the HTTP handler
type Config struct {
	GameService gameService.Service

	// GameRepo provides the pub/sub subscriptions behind the websocket feed
	GameRepo gameRepo.Repository

	Issuer *auth.Issuer
	Logger *zap.Logger
}

// Handler serves the HTTP and websocket API
type Handler struct {
	gameService gameService.Service
	gameRepo    gameRepo.Repository
	issuer      *auth.Issuer
	logger      *zap.Logger
}

// New creates a new handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Issuer == nil {
		return nil, ErrNilIssuer
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	return &Handler{
		gameService: cfg.GameService,
		gameRepo:    cfg.GameRepo,
		issuer:      cfg.Issuer,
		logger:      cfg.Logger,
	}, nil
}

// Register attaches all routes to the router
func (h *Handler) Register(router *gin.Engine) {
	router.POST("/auth/guest", h.createGuest)

	authed := router.Group("/", h.authMiddleware())
	authed.GET("/games", h.listOpenGames)
	authed.GET("/games/ws", h.subscribeOpenGames)
	authed.POST("/games", h.createGame)
	authed.GET("/games/current", h.getCurrentGame)
	authed.GET("/games/:id", h.getGame)
	authed.GET("/games/:id/reveals", h.getReveals)
	authed.GET("/games/:id/ws", h.subscribeGame)
	authed.POST("/games/:id/join", h.joinGame)
	authed.POST("/games/:id/leave", h.leaveGame)
	authed.POST("/games/:id/start", h.startGame)
	authed.POST("/games/:id/declare", h.declareRole)
	authed.POST("/games/:id/ack", h.acknowledgeRole)
	authed.POST("/games/:id/ability", h.useAbility)
	authed.POST("/games/:id/day", h.startDayPhase)
	authed.POST("/games/:id/skip", h.skipDiscussion)
	authed.POST("/games/:id/vote", h.castVote)
	authed.POST("/games/:id/tally", h.tallyVotes)
	authed.POST("/games/:id/reset", h.resetGame)
}

// authMiddleware verifies the bearer token and stores the caller's identity
// on the request context. Websocket clients cannot set headers from a
// browser, so a token query parameter is accepted as a fallback.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token = c.Query("token")
		}

		claims, err := h.issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}

		c.Set(ctxPlayerID, claims.PlayerID)
		c.Set(ctxPlayerName, claims.PlayerName)
		c.Next()
	}
}

func (h *Handler) createGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	playerID, token, err := h.issuer.IssueGuest(req.Name)
	if err != nil {
		h.logger.Error("failed to issue guest token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, guestResponse{
		PlayerID: playerID,
		Name:     req.Name,
		Token:    token,
	})
}

func (h *Handler) createGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "playerCount is required"})
		return
	}

	out, err := h.gameService.CreateGame(c.Request.Context(), &gameService.CreateGameInput{
		HostID:      c.GetString(ctxPlayerID),
		HostName:    c.GetString(ctxPlayerName),
		PlayerCount: req.PlayerCount,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) listOpenGames(c *gin.Context) {
	out, err := h.gameService.ListOpenGames(c.Request.Context(), &gameService.ListOpenGamesInput{})
	if err != nil {
		h.writeError(c, err)
		return
	}

	viewerID := c.GetString(ctxPlayerID)
	views := make([]*gameView, 0, len(out.Games))
	for _, g := range out.Games {
		views = append(views, snapshotFor(g, viewerID))
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) getGame(c *gin.Context) {
	out, err := h.gameService.GetGame(c.Request.Context(), &gameService.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) getCurrentGame(c *gin.Context) {
	playerID := c.GetString(ctxPlayerID)

	out, err := h.gameService.GetCurrentGame(c.Request.Context(), &gameService.GetCurrentGameInput{
		PlayerID: playerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, currentGameResponse{
		GameID: out.GameID,
		Game:   snapshotFor(out.Game, playerID),
	})
}

func (h *Handler) getReveals(c *gin.Context) {
	out, err := h.gameService.GetReveals(c.Request.Context(), &gameService.GetRevealsInput{
		GameID:   c.Param("id"),
		PlayerID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Reveals)
}

func (h *Handler) joinGame(c *gin.Context) {
	out, err := h.gameService.JoinGame(c.Request.Context(), &gameService.JoinGameInput{
		GameID:     c.Param("id"),
		PlayerID:   c.GetString(ctxPlayerID),
		PlayerName: c.GetString(ctxPlayerName),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) leaveGame(c *gin.Context) {
	playerID := c.GetString(ctxPlayerID)

	out, err := h.gameService.LeaveGame(c.Request.Context(), &gameService.LeaveGameInput{
		GameID:   c.Param("id"),
		PlayerID: playerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaveResponse{
		GameDeleted: out.GameDeleted,
		Game:        snapshotFor(out.Game, playerID),
	})
}

func (h *Handler) startGame(c *gin.Context) {
	out, err := h.gameService.StartGame(c.Request.Context(), &gameService.StartGameInput{
		GameID: c.Param("id"),
		HostID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) declareRole(c *gin.Context) {
	var req declareRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "role is required"})
		return
	}

	out, err := h.gameService.DeclareRole(c.Request.Context(), &gameService.DeclareRoleInput{
		GameID:    c.Param("id"),
		PlayerID:  c.GetString(ctxPlayerID),
		RoleClaim: req.Role,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) acknowledgeRole(c *gin.Context) {
	playerID := c.GetString(ctxPlayerID)

	out, err := h.gameService.AcknowledgeRole(c.Request.Context(), &gameService.AcknowledgeRoleInput{
		GameID:   c.Param("id"),
		PlayerID: playerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ackResponse{
		Role:              out.Role,
		RoleName:          out.Role.DisplayName(),
		FellowWerewolfIDs: out.FellowWerewolfIDs,
		Game:              snapshotFor(out.Game, playerID),
	})
}

func (h *Handler) useAbility(c *gin.Context) {
	var req useAbilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	playerID := c.GetString(ctxPlayerID)

	out, err := h.gameService.UseAbility(c.Request.Context(), &gameService.UseAbilityInput{
		GameID:          c.Param("id"),
		PlayerID:        playerID,
		TargetPlayerID:  req.TargetPlayerID,
		CenterCardIndex: req.CenterCardIndex,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, abilityResponse{
		Reveal:  out.Reveal,
		Special: out.Special,
		Game:    snapshotFor(out.Game, playerID),
	})
}

func (h *Handler) startDayPhase(c *gin.Context) {
	out, err := h.gameService.StartDayPhase(c.Request.Context(), &gameService.StartDayPhaseInput{
		GameID: c.Param("id"),
		HostID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) skipDiscussion(c *gin.Context) {
	out, err := h.gameService.SkipDiscussion(c.Request.Context(), &gameService.SkipDiscussionInput{
		GameID: c.Param("id"),
		HostID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) castVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "targetId is required"})
		return
	}

	out, err := h.gameService.CastVote(c.Request.Context(), &gameService.CastVoteInput{
		GameID:   c.Param("id"),
		VoterID:  c.GetString(ctxPlayerID),
		TargetID: req.TargetID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) tallyVotes(c *gin.Context) {
	out, err := h.gameService.TallyVotes(c.Request.Context(), &gameService.TallyVotesInput{
		GameID: c.Param("id"),
		HostID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

func (h *Handler) resetGame(c *gin.Context) {
	out, err := h.gameService.ResetGame(c.Request.Context(), &gameService.ResetGameInput{
		GameID: c.Param("id"),
		HostID: c.GetString(ctxPlayerID),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshotFor(out.Game, c.GetString(ctxPlayerID)))
}

// writeError maps service errors onto HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, gameService.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gameService.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, gameService.ErrInvalidPhaseForOperation),
		errors.Is(err, gameService.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, gameService.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}
