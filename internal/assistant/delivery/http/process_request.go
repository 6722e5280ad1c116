package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEmergencyReq reads the driver id from the path. The body is optional.
func (h *handler) processEmergencyReq(c *gin.Context) (emergencyReq, error) {
	var req emergencyReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.DriverID = c.Param("driverId")
	if req.DriverID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processUpsertReq binds the driver body and the id path param.
func (h *handler) processUpsertReq(c *gin.Context) (upsertDriverReq, error) {
	var req upsertDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processSetEarningsReq binds the earnings body plus id and date path params.
func (h *handler) processSetEarningsReq(c *gin.Context) (setEarningsReq, error) {
	var req setEarningsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.DriverID = c.Param("id")
	req.Day = c.Param("date")
	if req.DriverID == "" {
		return req, errMissingID
	}
	if req.Day == "" {
		return req, errors.New("date is required")
	}
	return req, nil
}
