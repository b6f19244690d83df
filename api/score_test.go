package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tsnevan4204/health-app-sub000/external/mocks"
	"github.com/tsnevan4204/health-app-sub000/schema"
	"github.com/tsnevan4204/health-app-sub000/score"
)

func scoreTestData() map[string][]schema.HealthSample {
	return map[string][]schema.HealthSample{
		schema.MetricHRV:              {{Value: 58}},
		schema.MetricRestingHeartRate: {{Value: 52}},
		schema.MetricExerciseMinutes:  {{Value: 45}},
		schema.MetricWeight:           {{Value: 145}},
	}
}

func TestBiologicalAgeEndpoint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().GetAllHealthData(gomock.Any(), gomock.Any()).Return(scoreTestData(), nil).Times(1)

	s := Server{
		healthSource: source,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.biologicalAge)

	req := httptest.NewRequest("GET", "/?age=22", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.BiologicalAgeResult `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	expected := score.BiologicalAge(
		scoreTestData()[schema.MetricHRV],
		scoreTestData()[schema.MetricRestingHeartRate],
		scoreTestData()[schema.MetricExerciseMinutes],
		scoreTestData()[schema.MetricWeight],
		22,
	)
	assert.Equal(t, expected.BiologicalAge, jResp.Result.BiologicalAge)
	assert.Equal(t, expected.OverallScore, jResp.Result.OverallScore)
	assert.Equal(t, expected.Interpretation, jResp.Result.Interpretation)
	assert.Equal(t, expected.Recommendations, jResp.Result.Recommendations)
	assert.Equal(t, 22, jResp.Result.ChronologicalAge)
}

func TestBiologicalAgeEndpointInvalidAge(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		healthSource: mocks.NewMockSource(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.biologicalAge)

	req := httptest.NewRequest("GET", "/?age=minus-one", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code)
}

func TestBiologicalAgeEndpointSourceError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().GetAllHealthData(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).Times(1)

	s := Server{
		healthSource: source,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.biologicalAge)

	req := httptest.NewRequest("GET", "/?age=22", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1103), jResp.Code)
}
