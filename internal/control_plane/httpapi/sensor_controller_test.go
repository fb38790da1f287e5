package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/httpapi"
	"smokeguard-server/internal/control_plane/usecases"
	mockusecases "smokeguard-server/test/unit/doubles/control_plane/usecases"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SensorController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockSensorService
		mockProbe   *mockusecases.MockConnectivityProbe
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSensorService(ctrl)
		mockProbe = mockusecases.NewMockConnectivityProbe(ctrl)
		router = http.NewServeMux()
		httpapi.NewSensorController(mockService, mockProbe).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("GET /sensors", func() {
		It("lists the stored sensors with the broker connectivity", func() {
			room := domain.RoomName("Room 1")
			sensors := []domain.Sensor{
				{
					ID:         "s-1",
					Room:       &room,
					Status:     domain.StatusOnline,
					IsActive:   true,
					LastUpdate: time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
					CreatedAt:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
				},
				{
					ID:     "s-2",
					Status: domain.StatusOffline,
				},
			}
			mockService.EXPECT().AllSensors(gomock.Any()).Return(sensors, nil)
			mockProbe.EXPECT().IsConnected().Return(true)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"status": "success",
				"mqtt_connected": true,
				"count": 2,
				"sensors": [
					{
						"sensor_id": "s-1",
						"room": "Room 1",
						"status": "online",
						"is_active": true,
						"last_update": "2025-05-02T10:00:00Z",
						"created_at": "2025-05-01T10:00:00Z"
					},
					{
						"sensor_id": "s-2",
						"room": null,
						"status": "offline",
						"is_active": false,
						"last_update": null,
						"created_at": null
					}
				]
			}`))
		})

		It("returns an empty list when there are no sensors", func() {
			mockService.EXPECT().AllSensors(gomock.Any()).Return(nil, nil)
			mockProbe.EXPECT().IsConnected().Return(false)

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"success","mqtt_connected":false,"count":0,"sensors":[]}`))
		})

		It("returns 500 when the store fails", func() {
			mockService.EXPECT().AllSensors(gomock.Any()).Return(nil, errors.New("boom"))

			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/sensors", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"error","message":"failed to list sensors"}`))
		})
	})

	Context("POST /add_sensor", func() {
		post := func(body string) {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/add_sensor", strings.NewReader(body)))
		}

		It("assigns the sensor to the normalized room", func() {
			room := domain.RoomName("Room 3")
			mockService.EXPECT().
				AddSensor(gomock.Any(), domain.ID("s-3"), "room3").
				Return(domain.Sensor{ID: "s-3", Room: &room}, nil)

			post(`{"sensor_id":"s-3","room":"room3"}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"status": "success",
				"message": "Sensor s-3 assigned to Room 3",
				"sensor_id": "s-3",
				"room": "Room 3"
			}`))
		})

		It("returns 400 when a field is missing", func() {
			mockService.EXPECT().
				AddSensor(gomock.Any(), domain.ID("s-3"), "").
				Return(domain.Sensor{}, usecases.ErrMissingField)

			post(`{"sensor_id":"s-3"}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"error","message":"sensor_id and room are required"}`))
		})

		It("returns 400 when the room cannot be normalized", func() {
			mockService.EXPECT().
				AddSensor(gomock.Any(), domain.ID("s-3"), "room").
				Return(domain.Sensor{}, usecases.ErrInvalidRoom)

			post(`{"sensor_id":"s-3","room":"room"}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the body is not json", func() {
			post(`sensor_id=s-3`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 when the store fails", func() {
			mockService.EXPECT().
				AddSensor(gomock.Any(), domain.ID("s-3"), "1").
				Return(domain.Sensor{}, errors.New("boom"))

			post(`{"sensor_id":"s-3","room":"1"}`)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("POST /sensors/{id}/toggle", func() {
		toggle := func(id, body string) {
			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/sensors/"+id+"/toggle", strings.NewReader(body)))
		}

		It("toggles the sensor and echoes the resolved room", func() {
			room := domain.RoomName("Room 2")
			mockService.EXPECT().
				ToggleSensor(gomock.Any(), domain.ID("s-2"), true).
				Return(domain.ControlCommand{SensorID: "s-2", Room: &room, IsActive: true}, nil)

			toggle("s-2", `{"is_active":true}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"success","sensor_id":"s-2","room":"Room 2","is_active":true}`))
		})

		It("reports a null room when it cannot be resolved", func() {
			mockService.EXPECT().
				ToggleSensor(gomock.Any(), domain.ID("ghost"), false).
				Return(domain.ControlCommand{SensorID: "ghost", IsActive: false}, nil)

			toggle("ghost", `{"is_active":false}`)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"success","sensor_id":"ghost","room":null,"is_active":false}`))
		})

		It("returns 400 when is_active is missing", func() {
			toggle("s-2", `{}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(MatchJSON(`{"status":"error","message":"is_active field is required"}`))
		})

		It("returns 400 when is_active is not a boolean", func() {
			toggle("s-2", `{"is_active":"yes"}`)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 when the service fails", func() {
			mockService.EXPECT().
				ToggleSensor(gomock.Any(), domain.ID("s-2"), true).
				Return(domain.ControlCommand{}, errors.New("boom"))

			toggle("s-2", `{"is_active":true}`)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
