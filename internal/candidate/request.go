package candidate

// Defaults applied to a persisted request when a key is absent. An explicit
// zero in the record is kept as-is.
const (
	DefaultWeightCity         = 50
	DefaultWeightSkill        = 30
	DefaultWeightExperience   = 20
	DefaultMinExperienceYears = 3
)

// Request describes one operational staffing need. It is supplied by the
// caller and read-only to the scoring engine. The required skill is expected
// to be a taxonomy tag but is not validated against it.
type Request struct {
	MissionID          string  `json:"mission_id" mapstructure:"mission_id"`
	TargetCity         string  `json:"target_city" mapstructure:"target_city"`
	RequiredSkill      string  `json:"required_skill" mapstructure:"required_skill"`
	MinExperienceYears int     `json:"min_experience_years" mapstructure:"min_experience_years"`
	MissionType        string  `json:"mission_type,omitempty" mapstructure:"mission_type"`
	Urgency            string  `json:"urgency,omitempty" mapstructure:"urgency"`
	WeightCity         float64 `json:"weight_city" mapstructure:"weight_city"`
	WeightSkill        float64 `json:"weight_skill" mapstructure:"weight_skill"`
	WeightExperience   float64 `json:"weight_experience" mapstructure:"weight_experience"`
}

// TotalWeight returns the sum of the three criterion weights. The scorer
// accepts any sum; a sum other than 100 only rescales the maximum attainable
// base score. Callers wanting strict weights can check this themselves.
func (r *Request) TotalWeight() float64 {
	return r.WeightCity + r.WeightSkill + r.WeightExperience
}
