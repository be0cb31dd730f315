package model

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field (nil -> default) from an explicit value,
// so an explicit zero length is validated rather than defaulted.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
}

// GenerateResponse represents a password generation response.
// Passwords is only set when more than one password was requested.
type GenerateResponse struct {
	Password  string          `json:"password"`
	Passwords []string        `json:"passwords,omitempty"`
	Length    int             `json:"length"`
	Clamped   bool            `json:"clamped,omitempty"`
	Classes   []string        `json:"classes"`
	Score     int             `json:"score"`
	Rating    string          `json:"rating"`
	Estimate  EntropyEstimate `json:"estimate"`
}

// EntropyEstimate is a zxcvbn measurement of the first generated password.
type EntropyEstimate struct {
	Bits      float64 `json:"bits"`
	Score     int     `json:"score"`
	CrackTime string  `json:"crack_time"`
}

// StrengthRequest asks for the score of a configuration without generating.
type StrengthRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// StrengthResponse carries the configuration score and its rating.
type StrengthResponse struct {
	Length   int    `json:"length"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Rating   string `json:"rating"`
}
