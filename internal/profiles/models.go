package profiles

import (
	"math"
	"time"
)

// Gender values.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Weekly work intensity values.
const (
	IntensityLight     = "light"
	IntensityModerate  = "moderate"
	IntensityHeavy     = "heavy"
	IntensityVeryHeavy = "very-heavy"
)

// Profile defaults. A fresh Set with missing fields lands exactly here,
// which is why the completeness check treats this tuple as "not filled in".
const (
	DefaultHeight    = 170.0
	DefaultGender    = GenderMale
	DefaultAge       = 25
	DefaultWeight    = 70.0
	DefaultIntensity = IntensityModerate
)

// UserProfile is the single persisted body profile.
type UserProfile struct {
	Height              float64   `json:"height"`        // cm
	Gender              string    `json:"gender"`        // male | female
	Age                 int       `json:"age"`           // years
	CurrentWeight       float64   `json:"currentWeight"` // kg
	WeeklyWorkIntensity string    `json:"weeklyWorkIntensity"`
	TargetWeight        float64   `json:"targetWeight,omitempty"` // kg, optional
	BMI                 float64   `json:"bmi,omitempty"`          // derived, never trusted from storage
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ProfileUpdate is a partial profile. Zero-valued fields mean "keep the
// previous value" — the original client coalesced falsy fields the same
// way, so 0 is not a storable height/weight/age.
type ProfileUpdate struct {
	Height              float64 `json:"height,omitempty"`
	Gender              string  `json:"gender,omitempty"`
	Age                 int     `json:"age,omitempty"`
	CurrentWeight       float64 `json:"currentWeight,omitempty"`
	WeeklyWorkIntensity string  `json:"weeklyWorkIntensity,omitempty"`
	TargetWeight        float64 `json:"targetWeight,omitempty"`
}

// ComputeBMI derives BMI from height and weight, rounded to one decimal.
func ComputeBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*10) / 10
}

// Complete reports whether the profile has been genuinely filled in.
//
// Two conditions: every required field is present and positive, and the
// tuple is not exactly the default one. The defaults are valid-looking
// values, so a profile that still equals them is treated as never
// configured. A user who deliberately enters the exact defaults is
// indistinguishable from one who never did; there is no separate
// "configured" flag to tell them apart.
func (p *UserProfile) Complete() bool {
	if p == nil {
		return false
	}

	isDefaultTuple := p.Height == DefaultHeight &&
		p.Gender == DefaultGender &&
		p.Age == DefaultAge &&
		p.CurrentWeight == DefaultWeight &&
		p.WeeklyWorkIntensity == DefaultIntensity
	if isDefaultTuple {
		return false
	}

	return p.Height > 0 &&
		p.Gender != "" &&
		p.Age > 0 &&
		p.CurrentWeight > 0 &&
		p.WeeklyWorkIntensity != ""
}

// ProfileResponse is the GET /v1/profile body.
type ProfileResponse struct {
	Profile  *UserProfile `json:"profile"`
	Complete bool         `json:"complete"`
}

// ErrorResponse is the shared error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine code and human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
