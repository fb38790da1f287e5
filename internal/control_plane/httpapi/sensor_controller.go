package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/httpapi/internal"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/httpserver"
)

const (
	listSensorsErrMessage  = "failed to list sensors"
	addSensorErrMessage    = "failed to add sensor"
	toggleSensorErrMessage = "failed to toggle sensor"
)

func NewSensorController(service usecases.SensorService, probe usecases.ConnectivityProbe) *SensorController {
	return &SensorController{
		service: service,
		probe:   probe,
	}
}

var _ httpserver.Controller = &SensorController{}

type SensorController struct {
	service usecases.SensorService
	probe   usecases.ConnectivityProbe
}

func (c *SensorController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /sensors", c.listSensors())
	router.Handle("POST /add_sensor", c.addSensor())
	router.Handle("POST /sensors/{id}/toggle", c.toggleSensor())
}

func (c *SensorController) listSensors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sensors, err := c.service.AllSensors(r.Context())
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listSensorsErrMessage)
			return
		}

		response := internal.SensorListResponse{
			Status:        httpserver.StatusSuccess,
			MQTTConnected: c.probe.IsConnected(),
			Count:         len(sensors),
			Sensors:       make([]internal.SensorResponse, 0, len(sensors)),
		}
		for _, sensor := range sensors {
			response.Sensors = append(response.Sensors, internal.ToSensorResponse(sensor))
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SensorController) addSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SensorAddRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "request body must be a json object")
			return
		}

		sensor, err := c.service.AddSensor(r.Context(), domain.ID(body.SensorID), body.Room)
		switch {
		case errors.Is(err, usecases.ErrMissingField):
			httpserver.ReplyWithError(w, http.StatusBadRequest, "sensor_id and room are required")
			return
		case errors.Is(err, usecases.ErrInvalidRoom):
			httpserver.ReplyWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid room %q", body.Room))
			return
		case err != nil:
			httpserver.ReplyWithError(w, http.StatusInternalServerError, addSensorErrMessage)
			return
		}

		room := ""
		if sensor.Room != nil {
			room = sensor.Room.String()
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SensorAddResponse{
			Status:   httpserver.StatusSuccess,
			Message:  fmt.Sprintf("Sensor %s assigned to %s", sensor.ID, room),
			SensorID: sensor.ID.String(),
			Room:     room,
		})
	}
}

func (c *SensorController) toggleSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		var body internal.SensorToggleRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "is_active must be a boolean")
			return
		}

		if body.IsActive == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "is_active field is required")
			return
		}

		command, err := c.service.ToggleSensor(r.Context(), domain.ID(id), *body.IsActive)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, toggleSensorErrMessage)
			return
		}

		var room *string
		if command.Room != nil {
			value := command.Room.String()
			room = &value
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SensorToggleResponse{
			Status:   httpserver.StatusSuccess,
			SensorID: command.SensorID.String(),
			Room:     room,
			IsActive: command.IsActive,
		})
	}
}
