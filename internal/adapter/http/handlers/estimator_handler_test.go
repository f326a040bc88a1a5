package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sparkle_shine/internal/adapter/http/handlers/mocks"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var handlerToday = entities.Date{Year: 2024, Month: time.February, Day: 15}

func editingView() usecase.EstimatorSessionView {
	s := entities.NewEstimatorSession("sess-1", handlerToday, time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC))
	grid := s.Calendar.Grid(s.Config.SelectedDate, handlerToday)
	return usecase.EstimatorSessionView{Session: s, Price: s.Price(), Grid: &grid, Today: handlerToday}
}

func newEstimatorRouter(uc usecase.IEstimatorUseCase) *gin.Engine {
	h := NewEstimatorHandler(uc)
	r := gin.New()
	s := r.Group("/v1/estimator/sessions")
	s.POST("", h.StartSession)
	s.GET("/:session_id", h.GetSession)
	s.PUT("/:session_id/package", h.SetPackage)
	s.POST("/:session_id/rooms", h.AdjustRoomCount)
	s.PUT("/:session_id/frequency", h.SetFrequency)
	s.POST("/:session_id/calendar/navigate", h.NavigateCalendar)
	s.POST("/:session_id/calendar/select", h.SelectDay)
	s.POST("/:session_id/submit", h.Submit)
	s.POST("/:session_id/reset", h.Reset)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimatorHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().StartSession(gomock.Any()).Return(editingView(), nil)

	w := doJSON(newEstimatorRouter(uc), http.MethodPost, "/v1/estimator/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var body struct {
		ID       string `json:"id"`
		State    string `json:"state"`
		Calendar *struct {
			MonthName string `json:"month_name"`
			Days      []any  `json:"days"`
		} `json:"calendar"`
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != "sess-1" || body.State != "editing" || body.Price.Total != "215.00" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body.Calendar == nil || body.Calendar.MonthName != "February" || len(body.Calendar.Days) != 29 {
		t.Fatalf("unexpected calendar: %s", w.Body.String())
	}
}

func TestEstimatorHandler_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mocks.MockIEstimatorUseCase)
		status int
		code   string
	}{
		{
			name:   "session not found",
			method: http.MethodGet,
			path:   "/v1/estimator/sessions/missing",
			setup: func(uc *mocks.MockIEstimatorUseCase) {
				uc.EXPECT().GetSession(gomock.Any(), "missing").Return(usecase.EstimatorSessionView{}, usecase.ErrSessionNotFound)
			},
			status: http.StatusNotFound,
			code:   "SESSION_NOT_FOUND",
		},
		{
			name:   "package payload missing",
			method: http.MethodPut,
			path:   "/v1/estimator/sessions/sess-1/package",
			body:   `{}`,
			status: http.StatusBadRequest,
			code:   "INVALID_ESTIMATOR_INPUT",
		},
		{
			name:   "unknown room kind",
			method: http.MethodPost,
			path:   "/v1/estimator/sessions/sess-1/rooms",
			body:   `{"kind":"kitchen","delta":1}`,
			status: http.StatusBadRequest,
			code:   "INVALID_ESTIMATOR_INPUT",
		},
		{
			name:   "room delta out of range",
			method: http.MethodPost,
			path:   "/v1/estimator/sessions/sess-1/rooms",
			body:   `{"kind":"bedroom","delta":9223372036854775807}`,
			status: http.StatusBadRequest,
			code:   "INVALID_ESTIMATOR_INPUT",
		},
		{
			name:   "unknown frequency",
			method: http.MethodPut,
			path:   "/v1/estimator/sessions/sess-1/frequency",
			body:   `{"frequency":"daily"}`,
			setup: func(uc *mocks.MockIEstimatorUseCase) {
				uc.EXPECT().SetFrequency(gomock.Any(), "sess-1", entities.FrequencyTier("daily")).
					Return(usecase.EstimatorSessionView{}, entities.ErrInvalidFrequency)
			},
			status: http.StatusBadRequest,
			code:   "INVALID_FREQUENCY",
		},
		{
			name:   "past date",
			method: http.MethodPost,
			path:   "/v1/estimator/sessions/sess-1/calendar/select",
			body:   `{"day":3}`,
			setup: func(uc *mocks.MockIEstimatorUseCase) {
				uc.EXPECT().SelectDay(gomock.Any(), "sess-1", 3).Return(usecase.EstimatorSessionView{}, entities.ErrPastDate)
			},
			status: http.StatusBadRequest,
			code:   "PAST_DATE",
		},
		{
			name:   "submit without date",
			method: http.MethodPost,
			path:   "/v1/estimator/sessions/sess-1/submit",
			setup: func(uc *mocks.MockIEstimatorUseCase) {
				uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(usecase.EstimatorSessionView{}, entities.ErrDateRequired)
			},
			status: http.StatusUnprocessableEntity,
			code:   "DATE_REQUIRED",
		},
		{
			name:   "mutation while confirmed",
			method: http.MethodPost,
			path:   "/v1/estimator/sessions/sess-1/calendar/navigate",
			body:   `{"direction":"next"}`,
			setup: func(uc *mocks.MockIEstimatorUseCase) {
				uc.EXPECT().NavigateCalendar(gomock.Any(), "sess-1", entities.NavigateNext).
					Return(usecase.EstimatorSessionView{}, entities.ErrBookingConfirmed)
			},
			status: http.StatusConflict,
			code:   "BOOKING_CONFIRMED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEstimatorUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(uc)
			}

			w := doJSON(newEstimatorRouter(uc), tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["code"] != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, body["code"])
			}
		})
	}
}

func TestEstimatorHandler_SubmitDateRequiredNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(usecase.EstimatorSessionView{}, entities.ErrDateRequired)

	w := doJSON(newEstimatorRouter(uc), http.MethodPost, "/v1/estimator/sessions/sess-1/submit", "")
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != entities.DateRequiredNotice {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestEstimatorHandler_AdjustAndReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("adjust rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		view := editingView()
		view.Session.Config.Bathrooms = 0
		uc.EXPECT().AdjustRoomCount(gomock.Any(), "sess-1", entities.RoomBathroom, -1).Return(view, nil)

		w := doJSON(newEstimatorRouter(uc), http.MethodPost, "/v1/estimator/sessions/sess-1/rooms", `{"kind":"bathroom","delta":-1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"bathrooms":0`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		uc.EXPECT().Reset(gomock.Any(), "sess-1").Return(editingView(), nil)

		w := doJSON(newEstimatorRouter(uc), http.MethodPost, "/v1/estimator/sessions/sess-1/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte(`"confirmation"`)) {
			t.Fatalf("confirmation should be omitted: %s", w.Body.String())
		}
	})
}
