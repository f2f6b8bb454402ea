package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"underwrite/app"
	"underwrite/domain/catalog"
)

// CatalogQuestions serves the static question catalog. With a `condition`
// query it narrows to the questions whose topics match that condition,
// which is how a conversational front end maps "I have diabetes" to the
// questions worth surfacing.
func CatalogQuestions(c *gin.Context) {
	var ids []catalog.ID
	if condition := c.Query("condition"); condition != "" {
		ids = catalog.QuestionsForCondition(condition)
	} else {
		ids = append(catalog.MandatoryOrder(), catalog.FallbackOrder()...)
	}

	views := make([]app.QuestionView, 0, len(ids))
	for _, id := range ids {
		q, ok := catalog.Get(id)
		if !ok {
			continue
		}
		views = append(views, app.QuestionView{ID: id, Text: q.Text, Mandatory: q.Mandatory})
	}

	c.JSON(http.StatusOK, gin.H{"questions": views, "count": len(views)})
}
