package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
	"github.com/google/uuid"
)

// minValidCourses is the survival threshold for a generated set. Fewer
// than this and the whole set is discarded in favor of the curated list,
// never a partial mix.
const minValidCourses = 6

// Recommender produces a course list for a (domain, skill level) pair.
// It never mutates state and is queried fresh per request; callers may
// layer a cache on top.
type Recommender struct {
	client  llm.Client
	timeout time.Duration
}

func NewRecommender(client llm.Client, timeout time.Duration) *Recommender {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Recommender{client: client, timeout: timeout}
}

const courseSystemPrompt = `You are a course curator for an online learning platform.

Rules:
- Return STRICT JSON only: an object with a single key "courses", an array of course objects.
- Each course object has: "title", "provider", "url", "price", "rating" (number),
  "duration", "description", "isFree" (boolean).
- Strongly prefer free, reputable sources.
- Every url MUST point at a specific course page or video (a /learn/ slug, a watch id,
  a /course/ path), never a platform homepage.`

type generatedCourses struct {
	Courses []domain.Course `json:"courses"`
}

// Recommend returns an ordered course list. Upstream failures, malformed
// payloads and over-filtered sets all resolve to the curated fallback;
// no error escapes to the caller.
func (r *Recommender) Recommend(ctx context.Context, learningDomain string, level domain.SkillLevel) []domain.Course {
	if r.client == nil {
		return Fallback(learningDomain, level)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.Complete(ctx, llm.Request{
		System:      courseSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildCoursePrompt(learningDomain, level)}},
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("course generation failed for %q/%s, using curated list: %v", learningDomain, level, err)
		return Fallback(learningDomain, level)
	}

	generated, err := parseCourses(raw)
	if err != nil {
		log.Printf("course generation returned invalid payload for %q/%s, using curated list: %v", learningDomain, level, err)
		return Fallback(learningDomain, level)
	}

	valid := filterCourses(generated, learningDomain, level)
	if len(valid) < minValidCourses {
		log.Printf("only %d of %d generated courses passed URL validation for %q/%s, using curated list",
			len(valid), len(generated), learningDomain, level)
		return Fallback(learningDomain, level)
	}
	return valid
}

func buildCoursePrompt(learningDomain string, level domain.SkillLevel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommend 8 courses for the subject %q at the %s level.\n", learningDomain, level)
	b.WriteString("Mix providers (freeCodeCamp, Coursera, edX, YouTube, Udemy, official docs).\n")
	b.WriteString("Remember: specific course pages only, and favor free options.\n")
	return b.String()
}

func parseCourses(raw string) ([]domain.Course, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	var payload generatedCourses
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	if len(payload.Courses) == 0 {
		return nil, fmt.Errorf("no courses in payload")
	}
	return payload.Courses, nil
}

// filterCourses keeps only courses with a specific-resource URL and
// stamps domain, level and a fresh id on the survivors.
func filterCourses(generated []domain.Course, learningDomain string, level domain.SkillLevel) []domain.Course {
	valid := make([]domain.Course, 0, len(generated))
	for _, c := range generated {
		if c.Title == "" || !ValidCourseURL(c.URL) {
			continue
		}
		c.ID = uuid.NewString()
		c.Domain = learningDomain
		c.SkillLevel = level
		valid = append(valid, c)
	}
	return valid
}

// slugSegments are path segments that mark a URL as pointing at a
// specific course or video rather than a platform landing page.
var slugSegments = map[string]bool{
	"watch":           true,
	"playlist":        true,
	"learn":           true,
	"course":          true,
	"courses":         true,
	"specializations": true,
	"tutorial":        true,
	"tutorials":       true,
	"tracks":          true,
	"path":            true,
	"paths":           true,
	"skills":          true,
}

// ValidCourseURL accepts only URLs that identify a specific resource.
// Bare domain roots and single generic segments are rejected.
func ValidCourseURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	// Video identifiers carried in the query (youtube watch/list ids).
	q := u.Query()
	if q.Get("v") != "" || q.Get("list") != "" {
		return true
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return false
	}
	for _, seg := range segments {
		if slugSegments[strings.ToLower(seg)] {
			return true
		}
	}
	// Without a recognized marker, require a nested path: a lone segment
	// like /about is still effectively a landing page.
	return len(segments) >= 2
}

func splitPath(p string) []string {
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
