package responses

type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int64  `json:"count"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}
