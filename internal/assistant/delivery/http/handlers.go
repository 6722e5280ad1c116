package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"porter-saathi/internal/assistant"
	pkgErrors "porter-saathi/pkg/errors"
	"porter-saathi/pkg/response"
)

// Query godoc
// @Summary     Ask the assistant
// @Description Classifies a free-text driver query and answers it from the driver's records.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Driver query"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		h.failedReply(c, msgQueryFailed)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Emergency godoc
// @Summary     Raise an emergency
// @Description Notifies the driver's emergency contact and returns a reassurance message.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       driverId path string       true  "Driver ID"
// @Param       body     body emergencyReq false "Location and emergency type"
// @Success     200 {object} queryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/emergency/{driverId} [POST]
func (h *handler) Emergency(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEmergencyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RaiseEmergency(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RaiseEmergency: %v", err)
		h.failedReply(c, msgEmergencyFailed)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Commands godoc
// @Summary     List example voice commands
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} commandsResp
// @Router      /api/commands [GET]
func (h *handler) Commands(c *gin.Context) {
	response.OK(c, commandsResp{Commands: h.uc.Commands()})
}

// Detail godoc
// @Summary     Get driver profile
// @Description Returns the driver's profile and earnings ledger, newest day first.
// @Tags        Driver
// @Produce     json
// @Param       id path string true "Driver ID"
// @Success     200 {object} driverResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/driver/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	d, err := h.uc.GetDriver(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetDriver: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDriverResp(d))
}

// Upsert godoc
// @Summary     Create or replace a driver profile
// @Description Creates the driver or overwrites its profile. The earnings ledger is reset.
// @Tags        Driver
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Driver ID"
// @Param       body body upsertDriverReq true "Driver profile"
// @Success     200 {object} driverResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/driver/{id} [PUT]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.PutDriver(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PutDriver: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDriverResp(d))
}

// SetEarnings godoc
// @Summary     Record a day's earnings
// @Description Overwrites one ledger day. date accepts YYYY-MM-DD, today or yesterday. netEarnings defaults to totalEarnings - expenses.
// @Tags        Driver
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Driver ID"
// @Param       date path string         true "Day"
// @Param       body body setEarningsReq true "Earnings"
// @Success     200 {object} earningsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/driver/{id}/earnings/{date} [PUT]
func (h *handler) SetEarnings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetEarningsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetEarnings(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SetEarnings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEarningsResp(output.Date, output.Earnings))
}

// failedReply answers 500 with a text reply the client can still speak.
func (h *handler) failedReply(c *gin.Context, text string) {
	response.Error(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, text), map[string]interface{}{
		"response":    text,
		"type":        string(assistant.KindText),
		"suggestions": map[string]string{},
	})
}
