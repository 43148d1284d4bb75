package queries

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPatientSearchFilter(t *testing.T) {
	t.Run("Empty params produce empty filter", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{})
		assert.Empty(t, filter)
	})

	t.Run("Name matches as case-insensitive substring", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{"name": {"ali"}})

		assert.Equal(t, bson.M{"$regex": "ali", "$options": "i"}, filter["name"])
	})

	t.Run("Regex metacharacters in name are escaped", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{"name": {"a.c"}})

		assert.Equal(t, bson.M{"$regex": `a\.c`, "$options": "i"}, filter["name"])
	})

	t.Run("Condition matches as list membership", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{"condition": {"diabetes"}})

		assert.Equal(t, bson.M{"$in": bson.A{"diabetes"}}, filter["medical_history"])
	})

	t.Run("Present params compose conjunctively", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{
			"name":      {"ali"},
			"contact":   {"555"},
			"condition": {"asthma"},
		})

		assert.Len(t, filter, 3)
		assert.Contains(t, filter, "name")
		assert.Contains(t, filter, "contact")
		assert.Contains(t, filter, "medical_history")
	})

	t.Run("Empty values add no constraint", func(t *testing.T) {
		filter := BuildPatientSearchFilter(url.Values{"name": {""}, "contact": {""}})
		assert.Empty(t, filter)
	})
}

func TestBuildPageRequest(t *testing.T) {
	t.Run("Defaults when absent", func(t *testing.T) {
		page := BuildPageRequest(url.Values{})

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 5, page.Limit)
		assert.Equal(t, 0, page.Skip)
	})

	t.Run("Skip derives from page and limit", func(t *testing.T) {
		page := BuildPageRequest(url.Values{"page": {"2"}, "limit": {"5"}})

		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.Limit)
		assert.Equal(t, 5, page.Skip)
	})

	t.Run("Third page with custom limit", func(t *testing.T) {
		page := BuildPageRequest(url.Values{"page": {"3"}, "limit": {"10"}})

		assert.Equal(t, 20, page.Skip)
	})

	t.Run("Non-positive values clamp to defaults", func(t *testing.T) {
		page := BuildPageRequest(url.Values{"page": {"0"}, "limit": {"-2"}})

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 5, page.Limit)
		assert.Equal(t, 0, page.Skip)
	})

	t.Run("Non-numeric values clamp to defaults", func(t *testing.T) {
		page := BuildPageRequest(url.Values{"page": {"abc"}, "limit": {"x"}})

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 5, page.Limit)
	})
}

func TestConditionCountPipeline(t *testing.T) {
	pipeline := ConditionCountPipeline()

	assert.Len(t, pipeline, 3)
	assert.Equal(t, "$medical_history", pipeline[0]["$unwind"])
	assert.Equal(t, bson.M{"_id": "$medical_history", "count": bson.M{"$sum": 1}}, pipeline[1]["$group"])
	assert.Equal(t, bson.M{"condition": "$_id", "count": 1, "_id": 0}, pipeline[2]["$project"])
}

func TestGenderCountPipeline(t *testing.T) {
	pipeline := GenderCountPipeline()

	assert.Len(t, pipeline, 2)
	assert.Equal(t, bson.M{"_id": "$gender", "count": bson.M{"$sum": 1}}, pipeline[0]["$group"])
	assert.Equal(t, bson.M{"gender": "$_id", "count": 1, "_id": 0}, pipeline[1]["$project"])
}
