package dto

type RegisterRequest struct {
	Name          string   `json:"name"`
	Qualification string   `json:"qualification"`
	Email         string   `json:"email"`
	Mobile        string   `json:"mobile"`
	Password      string   `json:"password"`
	SkillsHave    []string `json:"skillsHave"`
	SkillsNeed    []string `json:"skillsNeed"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}
