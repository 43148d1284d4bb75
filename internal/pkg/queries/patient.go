// Package queries builds storage filter descriptors from untrusted request
// parameters. Builders never talk to storage; they only describe which
// documents satisfy a query.
package queries

import (
	"medirecord-service/internal/pkg/constvars"
	"net/url"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

type PageRequest struct {
	Page  int
	Limit int
	Skip  int
}

// BuildPatientSearchFilter translates search query parameters into a patient
// filter. name and contact match as case-insensitive substrings, condition as
// exact membership in the medical history list. Present parameters compose
// with AND; absent or empty parameters add no constraint.
func BuildPatientSearchFilter(params url.Values) bson.M {
	filter := bson.M{}

	if name := params.Get(constvars.URLQueryParamName); name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}
	}
	if contact := params.Get(constvars.URLQueryParamContact); contact != "" {
		filter["contact"] = bson.M{"$regex": regexp.QuoteMeta(contact), "$options": "i"}
	}
	if condition := params.Get(constvars.URLQueryParamCondition); condition != "" {
		filter["medical_history"] = bson.M{"$in": bson.A{condition}}
	}

	return filter
}

// BuildPageRequest resolves pagination parameters. Absent, non-numeric or
// non-positive values fall back to the defaults (page 1, limit 5), so page
// never drops below 1 and skip is always non-negative.
func BuildPageRequest(params url.Values) PageRequest {
	page, err := strconv.Atoi(params.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultSearchPage
	}

	limit, err := strconv.Atoi(params.Get(constvars.URLQueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultSearchLimit
	}

	return PageRequest{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// ConditionCountPipeline flattens each patient's medical history to one row
// per condition and counts patients per condition.
func ConditionCountPipeline() []bson.M {
	return []bson.M{
		{"$unwind": "$medical_history"},
		{"$group": bson.M{"_id": "$medical_history", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"condition": "$_id", "count": 1, "_id": 0}},
	}
}

// GenderCountPipeline counts patients per gender.
func GenderCountPipeline() []bson.M {
	return []bson.M{
		{"$group": bson.M{"_id": "$gender", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"gender": "$_id", "count": 1, "_id": 0}},
	}
}
