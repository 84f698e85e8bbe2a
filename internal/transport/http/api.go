package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// API wires the use-case services into the HTTP surface consumed by the
// single-page front end.
type API struct {
	auth     *app.AuthService
	quiz     *app.QuizService
	courses  *app.CourseService
	mentor   *app.MentorService
	schedule *app.ScheduleService
}

func NewAPI(auth *app.AuthService, quiz *app.QuizService, courses *app.CourseService, mentor *app.MentorService, schedule *app.ScheduleService) *API {
	return &API{auth: auth, quiz: quiz, courses: courses, mentor: mentor, schedule: schedule}
}

// Register mounts all REST routes on the mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", a.handleSignup)
	mux.HandleFunc("POST /api/auth/login", a.handleLogin)
	mux.HandleFunc("POST /api/user/onboard", a.handleOnboard)
	mux.HandleFunc("POST /api/quiz/generate", a.handleGenerateQuiz)
	mux.HandleFunc("POST /api/quiz/submit", a.handleSubmitQuiz)
	mux.HandleFunc("GET /api/user/{id}/skills", a.handleSkills)
	mux.HandleFunc("GET /api/user/{id}/enrolled", a.handleEnrolled)
	mux.HandleFunc("GET /api/courses/recommendations/{userId}", a.handleRecommendations)
	mux.HandleFunc("GET /api/courses/recommendations/{userId}/{domain}", a.handleRecommendations)
	mux.HandleFunc("POST /api/courses/enroll", a.handleEnroll)
	mux.HandleFunc("PATCH /api/courses/{id}/progress", a.handleProgress)
	mux.HandleFunc("POST /api/schedule", a.handleCreateSchedule)
	mux.HandleFunc("GET /api/schedule/{userId}", a.handleListSchedules)
	mux.HandleFunc("PATCH /api/schedule/{id}", a.handleUpdateSchedule)
	mux.HandleFunc("GET /api/mentor/recommendations/{userId}", a.handleNudges)
	mux.HandleFunc("POST /api/chat", a.handleChat)
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := a.auth.Signup(r.Context(), app.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"userId":   user.ID,
		"username": user.Username,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := a.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId":          user.ID,
		"username":        user.Username,
		"selectedDomains": user.SelectedDomains,
	})
}

type onboardRequest struct {
	UserID  string   `json:"userId"`
	Domains []string `json:"domains"`
}

func (a *API) handleOnboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if !decode(w, r, &req) {
		return
	}
	domains, err := a.auth.Onboard(r.Context(), req.UserID, req.Domains)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"selectedDomains": domains})
}

type generateQuizRequest struct {
	UserID  string   `json:"userId"`
	Domains []string `json:"domains"`
}

func (a *API) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if !decode(w, r, &req) {
		return
	}
	generated, err := a.quiz.GenerateQuiz(r.Context(), req.UserID, req.Domains)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generated)
}

type submitQuizRequest struct {
	UserID    string            `json:"userId"`
	Domain    string            `json:"domain"`
	Questions []domain.Question `json:"questions"`
	Answers   []int             `json:"answers"`
}

func (a *API) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := a.quiz.SubmitQuiz(r.Context(), app.SubmitInput{
		UserID:    req.UserID,
		Domain:    req.Domain,
		Questions: req.Questions,
		Answers:   req.Answers,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := a.quiz.CurrentSkills(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

func (a *API) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	courses, err := a.courses.Recommendations(r.Context(), r.PathValue("userId"), r.PathValue("domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

type enrollRequest struct {
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Domain   string `json:"domain"`
	IsPaid   bool   `json:"isPaid"`
}

func (a *API) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !decode(w, r, &req) {
		return
	}
	enrollment, err := a.courses.Enroll(r.Context(), app.EnrollInput{
		UserID:         req.UserID,
		CourseTitle:    req.Title,
		CoursePlatform: req.Provider,
		CourseURL:      req.URL,
		Domain:         req.Domain,
		IsPaid:         req.IsPaid,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enrollment)
}

func (a *API) handleEnrolled(w http.ResponseWriter, r *http.Request) {
	enrollments, err := a.courses.EnrolledCourses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": enrollments})
}

type progressRequest struct {
	Progress *int `json:"progress"`
}

func (a *API) handleProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Progress == nil {
		writeMessage(w, http.StatusBadRequest, "progress is required")
		return
	}
	enrollment, err := a.courses.UpdateProgress(r.Context(), r.PathValue("id"), *req.Progress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"enrollment": enrollment,
	})
}

type createScheduleRequest struct {
	UserID      string    `json:"userId"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
}

func (a *API) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if !decode(w, r, &req) {
		return
	}
	entry, err := a.schedule.Create(r.Context(), app.CreateScheduleInput{
		UserID:      req.UserID,
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (a *API) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	entries, err := a.schedule.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"schedule": entries})
}

type updateScheduleRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
}

func (a *API) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req updateScheduleRequest
	if !decode(w, r, &req) {
		return
	}
	entry, err := a.schedule.Update(r.Context(), r.PathValue("id"), app.SchedulePatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (a *API) handleNudges(w http.ResponseWriter, r *http.Request) {
	nudges, err := a.mentor.Nudges(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": nudges})
}

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	UserID              string     `json:"userId"`
	Message             string     `json:"message"`
	ConversationHistory []chatTurn `json:"conversationHistory"`
}

func (a *API) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decode(w, r, &req) {
		return
	}
	history := make([]domain.ChatMessage, 0, len(req.ConversationHistory))
	for _, turn := range req.ConversationHistory {
		history = append(history, domain.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	reply, err := a.mentor.Chat(r.Context(), req.UserID, req.Message, history)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps domain errors onto the HTTP taxonomy. Upstream
// generative failures never reach this path; they are absorbed by
// fallbacks inside the services.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrScheduleNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyQuiz),
		errors.Is(err, domain.ErrAnswerMismatch),
		errors.Is(err, domain.ErrUserExists):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
