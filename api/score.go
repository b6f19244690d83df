package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tsnevan4204/health-app-sub000/schema"
	"github.com/tsnevan4204/health-app-sub000/score"
	"github.com/tsnevan4204/health-app-sub000/utils"
)

// scoreWindowDays is how far back the on-demand scoring window reaches.
const scoreWindowDays = 30

// biologicalAge recomputes the biological age estimate from the current
// sample sets. The result is derived state: nothing is stored.
func (s *Server) biologicalAge(c *gin.Context) {
	age := 0
	if a := c.Query("age"); a != "" {
		parsed, err := strconv.Atoi(a)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		age = parsed
	}
	if age == 0 {
		age = score.DefaultChronologicalAge(s.rng)
	}

	now := time.Now().UTC()
	data, err := s.healthSource.GetAllHealthData(c.Request.Context(), schema.DateRange{
		StartDate: now.AddDate(0, 0, -scoreWindowDays),
		EndDate:   now,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorScore, err)
		return
	}

	result := score.BiologicalAge(
		data[schema.MetricHRV],
		data[schema.MetricRestingHeartRate],
		data[schema.MetricExerciseMinutes],
		data[schema.MetricWeight],
		age,
	)

	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	if lang != "" {
		localizeAgeResult(lang, &result)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}

// localizeAgeResult swaps the fixed English texts for localized ones when
// the catalog has them; unknown languages keep the English fallback.
func localizeAgeResult(lang string, result *schema.BiologicalAgeResult) {
	loc := utils.NewLocalizer(lang)

	if msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "biological_age.interpretation." + result.InterpretationBand,
	}); err == nil {
		result.Interpretation = msg
	}

	for i, key := range result.RecommendationKeys {
		if msg, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "biological_age.recommendation." + key,
		}); err == nil {
			result.Recommendations[i] = msg
		}
	}
}
