package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/courses"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/infra/memory"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/mentor"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/quiz"
	transport "github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/transport/http"
)

// newTestServer wires the full API against the in-memory store with a
// nil generative client, so every generated artifact comes from the
// deterministic fallbacks.
func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	recommender := courses.NewRecommender(nil, time.Second)
	api := transport.NewAPI(
		app.NewAuthService(store),
		app.NewQuizService(store, quiz.NewGenerator(nil, time.Second)),
		app.NewCourseService(store, memory.NewRecommendationCache(recommender, time.Minute)),
		app.NewMentorService(store, mentor.NewResponder(nil, time.Second)),
		app.NewScheduleService(store),
	)

	mux := http.NewServeMux()
	api.Register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, store
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func signupUser(t *testing.T, baseURL string) string {
	t.Helper()
	resp, body := postJSON(t, baseURL+"/api/auth/signup", map[string]string{
		"username": "ada",
		"email":    "ada@example.org",
		"password": "hunter22",
		"fullName": "Ada Lovelace",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status %d", resp.StatusCode)
	}
	userID, _ := body["userId"].(string)
	if userID == "" {
		t.Fatal("signup returned no userId")
	}
	return userID
}

func TestSignupLoginFlow(t *testing.T) {
	server, _ := newTestServer(t)
	signupUser(t, server.URL)

	resp, _ := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"username": "ada", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}

	resp, body := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"username": "ada", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status %d", resp.StatusCode)
	}
	// Unknown users get the same response shape and status.
	resp2, body2 := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"username": "nobody", "password": "hunter22",
	})
	if resp2.StatusCode != http.StatusUnauthorized || body2["message"] != body["message"] {
		t.Fatalf("login failures must be indistinguishable: %d %v vs %d %v",
			resp.StatusCode, body["message"], resp2.StatusCode, body2["message"])
	}
}

func TestQuizGenerateAndSubmitFlow(t *testing.T) {
	server, _ := newTestServer(t)
	userID := signupUser(t, server.URL)

	resp, body := postJSON(t, server.URL+"/api/quiz/generate", map[string]interface{}{
		"userId":  userID,
		"domains": []string{"Web Development"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate status %d", resp.StatusCode)
	}
	rawQuestions, _ := body["questions"].([]interface{})
	if len(rawQuestions) == 0 {
		t.Fatal("generate returned no questions")
	}

	// Re-encode the generated questions and answer them all with option 0.
	questionsJSON, _ := json.Marshal(body["questions"])
	var questions []domain.Question
	if err := json.Unmarshal(questionsJSON, &questions); err != nil {
		t.Fatalf("round-trip questions: %v", err)
	}
	answers := make([]int, len(questions))

	resp, body = postJSON(t, server.URL+"/api/quiz/submit", map[string]interface{}{
		"userId":    userID,
		"domain":    "Web Development",
		"questions": questions,
		"answers":   answers,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status %d: %v", resp.StatusCode, body)
	}
	if _, ok := body["skillLevel"].(string); !ok {
		t.Fatalf("submit response missing skillLevel: %v", body)
	}
	if total, _ := body["totalQuestions"].(float64); int(total) != len(questions) {
		t.Fatalf("totalQuestions %v, want %d", body["totalQuestions"], len(questions))
	}

	skillsResp, err := http.Get(fmt.Sprintf("%s/api/user/%s/skills", server.URL, userID))
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	defer skillsResp.Body.Close()
	var skills map[string]string
	if err := json.NewDecoder(skillsResp.Body).Decode(&skills); err != nil {
		t.Fatalf("decode skills: %v", err)
	}
	if skills["Web Development"] == "" {
		t.Fatalf("expected a stored skill level, got %v", skills)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	userID := signupUser(t, server.URL)

	resp, err := http.Get(fmt.Sprintf("%s/api/courses/recommendations/%s", server.URL, userID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var body struct {
		Courses []domain.Course `json:"courses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Courses) == 0 {
		t.Fatal("expected curated fallback courses")
	}
	for _, c := range body.Courses {
		if !courses.ValidCourseURL(c.URL) {
			t.Errorf("course %q has invalid URL %q", c.Title, c.URL)
		}
	}

	// Unknown users are a 404, not an empty list.
	missing, err := http.Get(server.URL + "/api/courses/recommendations/missing-user")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", missing.StatusCode)
	}
}

func TestEnrollAndProgressEndpoints(t *testing.T) {
	server, store := newTestServer(t)
	userID := signupUser(t, server.URL)

	resp, body := postJSON(t, server.URL+"/api/courses/enroll", map[string]interface{}{
		"userId":   userID,
		"title":    "Intro to React",
		"provider": "Scrimba",
		"url":      "https://scrimba.com/learn/learnreact",
		"domain":   "Web Development",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("enroll status %d: %v", resp.StatusCode, body)
	}
	enrollmentID, _ := body["id"].(string)
	if enrollmentID == "" {
		t.Fatalf("enroll returned no id: %v", body)
	}

	patch := func(progress int) (*http.Response, map[string]interface{}) {
		data, _ := json.Marshal(map[string]int{"progress": progress})
		req, err := http.NewRequest(http.MethodPatch,
			fmt.Sprintf("%s/api/courses/%s/progress", server.URL, enrollmentID), bytes.NewReader(data))
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("patch: %v", err)
		}
		defer resp.Body.Close()
		var decoded map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return resp, decoded
	}

	resp, _ = patch(55)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("progress 55 status %d", resp.StatusCode)
	}
	resp, _ = patch(100)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("progress 100 status %d", resp.StatusCode)
	}

	enrollments, err := store.EnrollmentsByUser(context.Background(), userID)
	if err != nil || len(enrollments) != 1 {
		t.Fatalf("expected one enrollment, got %d (err %v)", len(enrollments), err)
	}
	if enrollments[0].Progress != 100 || !enrollments[0].Completed {
		t.Fatalf("expected completed at 100%%, got %+v", enrollments[0])
	}
}

func TestChatEndpointFallsBackWithoutClient(t *testing.T) {
	server, _ := newTestServer(t)
	userID := signupUser(t, server.URL)

	resp, body := postJSON(t, server.URL+"/api/chat", map[string]interface{}{
		"userId":  userID,
		"message": "I'm feeling stuck with CSS",
		"conversationHistory": []map[string]string{
			{"role": "assistant", "content": mentor.WelcomeMessage},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat status %d: %v", resp.StatusCode, body)
	}
	reply, _ := body["response"].(string)
	if reply != mentor.FallbackReply("I'm feeling stuck with CSS") {
		t.Fatalf("expected the motivation canned reply, got %q", reply)
	}
}

func TestScheduleEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	userID := signupUser(t, server.URL)

	resp, body := postJSON(t, server.URL+"/api/schedule", map[string]interface{}{
		"userId":  userID,
		"title":   "Finish module 3",
		"dueDate": time.Now().UTC().Add(72 * time.Hour),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d: %v", resp.StatusCode, body)
	}

	listResp, err := http.Get(fmt.Sprintf("%s/api/schedule/%s", server.URL, userID))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer listResp.Body.Close()
	var list struct {
		Schedule []domain.LearningSchedule `json:"schedule"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Schedule) != 1 || list.Schedule[0].Title != "Finish module 3" {
		t.Fatalf("unexpected schedule list %+v", list.Schedule)
	}
}

func TestValidationErrorsMapTo400(t *testing.T) {
	server, _ := newTestServer(t)
	userID := signupUser(t, server.URL)

	// Mismatched answers.
	resp, _ := postJSON(t, server.URL+"/api/quiz/submit", map[string]interface{}{
		"userId": userID,
		"domain": "Web Development",
		"questions": []domain.Question{
			{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		},
		"answers": []int{0, 1},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("mismatch status %d", resp.StatusCode)
	}

	// Duplicate signup.
	resp, _ = postJSON(t, server.URL+"/api/auth/signup", map[string]string{
		"username": "ada", "email": "ada@example.org", "password": "hunter22",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate signup status %d", resp.StatusCode)
	}
}
