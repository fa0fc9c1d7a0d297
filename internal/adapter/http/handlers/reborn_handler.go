package handlers

import (
	"net/http"
	"time"

	request "reborn_api/internal/adapter/http/dto/request"
	response "reborn_api/internal/adapter/http/dto/response"
	"reborn_api/internal/adapter/http/middleware"
	"reborn_api/internal/usecase"
	"reborn_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRebornPayload = pkg.NewDomainErrorSimple("INVALID_REBORN_INPUT", "Invalid reborn payload", http.StatusBadRequest)

type RebornHandler struct {
	usecase usecase.IRebornUseCase
	now     func() time.Time
}

func NewRebornHandler(uc usecase.IRebornUseCase) *RebornHandler {
	return &RebornHandler{usecase: uc, now: time.Now}
}

// CreateReborn godoc
// @Summary      Register a reborn
// @Tags         reborns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateRebornRequest  true  "Reborn"
// @Success      201   {object}  response.RebornResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reborns [post]
func (h *RebornHandler) CreateReborn(c *gin.Context) {
	var payload request.CreateRebornRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRebornPayload.HTTPStatus, errInvalidRebornPayload.ToHTTPError())
		return
	}
	birthDate, err := payload.ParseBirthDate()
	if err != nil {
		c.JSON(errInvalidRebornPayload.HTTPStatus, errInvalidRebornPayload.ToHTTPError())
		return
	}

	reborn, err := h.usecase.CreateReborn(c.Request.Context(), usecase.CreateRebornInput{
		UserID:      middleware.UserID(c),
		Name:        payload.Name,
		BirthDate:   birthDate,
		Weight:      payload.Weight,
		Height:      payload.Height,
		PhotoURL:    payload.PhotoURL,
		Description: payload.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReborn(reborn, h.now()))
}

// ListReborns godoc
// @Summary      List the caller's reborns
// @Tags         reborns
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.RebornsListResponse
// @Router       /reborns [get]
func (h *RebornHandler) ListReborns(c *gin.Context) {
	reborns, err := h.usecase.ListUserReborns(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReborns(reborns, h.now()))
}

// GetReborn godoc
// @Summary      Get one reborn
// @Tags         reborns
// @Security     Bearer
// @Produce      json
// @Param        reborn_id  path      string  true  "Reborn ID"
// @Success      200        {object}  response.RebornResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /reborns/{reborn_id} [get]
func (h *RebornHandler) GetReborn(c *gin.Context) {
	reborn, err := h.usecase.GetReborn(c.Request.Context(), middleware.UserID(c), c.Param("reborn_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReborn(reborn, h.now()))
}
