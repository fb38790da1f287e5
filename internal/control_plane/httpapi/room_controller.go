package httpapi

import (
	"net/http"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/httpapi/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/httpserver"
)

func NewRoomController(service usecases.RoomService) *RoomController {
	return &RoomController{
		service: service,
	}
}

var _ httpserver.Controller = &RoomController{}

type RoomController struct {
	service usecases.RoomService
}

func (c *RoomController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /rooms", c.listRooms())
	router.Handle("GET /rooms/{name}/history", c.roomHistory())
	router.Handle("GET /alerts", c.listAlerts())
}

func (c *RoomController) listRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := c.service.AllRooms(r.Context())
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list rooms")
			return
		}

		response := internal.RoomListResponse{
			Status: httpserver.StatusSuccess,
			Count:  len(rooms),
			Rooms:  make([]internal.RoomResponse, 0, len(rooms)),
		}
		for _, room := range rooms {
			response.Rooms = append(response.Rooms, internal.ToRoomResponse(room))
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *RoomController) roomHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := domain.NormalizeRoomName(httpserver.GetPathParam(r, "name"))
		if !ok {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid room name")
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		entries, total, err := c.service.RoomHistory(r.Context(), name, pagination)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to get room history")
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToHistoryEntryResponses(entries), total, params)
	}
}

func (c *RoomController) listAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		alerts, total, err := c.service.Alerts(r.Context(), pagination)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to list alerts")
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToAlertResponses(alerts), total, params)
	}
}
