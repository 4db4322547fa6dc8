package dto

// RegisterRequest represents a student registration
// @Description Request body for registering a student
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StudentResponse represents a student's profile
type StudentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse carries the new student and an access token for
// submitting quizzes.
type RegisterResponse struct {
	StudentResponse
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// StudentDetailResponse is a profile with result history
type StudentDetailResponse struct {
	StudentResponse
	QuizResults []ResultSummaryResponse `json:"quiz_results"`
}

// RegistrationStatusResponse answers whether a student id is known
type RegistrationStatusResponse struct {
	StudentID  string `json:"student_id"`
	Registered bool   `json:"registered"`
}
