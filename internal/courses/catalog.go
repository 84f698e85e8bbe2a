package courses

import (
	"fmt"
	"strings"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// catalogEntry is one verified course in the curated fallback list. The
// title is composed per skill level at lookup time so displayed titles
// never contradict the user's assessed level.
type catalogEntry struct {
	topic    string
	provider string
	url      string
	price    string
	rating   float64
	duration string
	isFree   bool
}

// Curated per-domain entries. URLs point at specific course pages and
// are maintained by hand.
var catalog = map[string][]catalogEntry{
	"web development": {
		{"HTML and CSS", "freeCodeCamp", "https://www.freecodecamp.org/learn/2022/responsive-web-design/", "Free", 4.8, "60 hours", true},
		{"JavaScript", "freeCodeCamp", "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", "Free", 4.8, "80 hours", true},
		{"Web Development", "The Odin Project", "https://www.theodinproject.com/paths/full-stack-javascript", "Free", 4.7, "Self-paced", true},
		{"HTML, CSS and JavaScript", "Coursera", "https://www.coursera.org/learn/html-css-javascript-for-web-developers", "Free to audit", 4.7, "40 hours", true},
		{"React", "Scrimba", "https://scrimba.com/learn/learnreact", "Free", 4.6, "12 hours", true},
		{"Node.js", "YouTube", "https://www.youtube.com/watch?v=Oe421EPjeBE", "Free", 4.7, "8 hours", true},
		{"Full-Stack Engineering", "edX", "https://www.edx.org/course/cs50s-web-programming-with-python-and-javascript", "Free to audit", 4.8, "12 weeks", true},
	},
	"data science": {
		{"Python for Data Science", "freeCodeCamp", "https://www.freecodecamp.org/learn/data-analysis-with-python/", "Free", 4.7, "50 hours", true},
		{"Data Science", "Coursera", "https://www.coursera.org/specializations/jhu-data-science", "Free to audit", 4.6, "11 months", true},
		{"Statistics", "Khan Academy", "https://www.khanacademy.org/math/statistics-probability", "Free", 4.7, "Self-paced", true},
		{"Pandas", "Kaggle", "https://www.kaggle.com/learn/pandas", "Free", 4.6, "4 hours", true},
		{"Machine Learning", "Coursera", "https://www.coursera.org/specializations/machine-learning-introduction", "Free to audit", 4.9, "3 months", true},
		{"SQL for Data Analysis", "Mode", "https://mode.com/sql-tutorial/introduction-to-sql", "Free", 4.5, "10 hours", true},
	},
	"cybersecurity": {
		{"Cybersecurity", "Coursera", "https://www.coursera.org/professional-certificates/google-cybersecurity", "Free to audit", 4.8, "6 months", true},
		{"Network Security", "TryHackMe", "https://tryhackme.com/path/outline/presecurity", "Free tier", 4.7, "40 hours", true},
		{"Ethical Hacking", "YouTube", "https://www.youtube.com/watch?v=3Kq1MIfTWCE", "Free", 4.6, "12 hours", true},
		{"Web Security", "PortSwigger", "https://portswigger.net/web-security/learning-path", "Free", 4.8, "Self-paced", true},
		{"Cryptography", "Coursera", "https://www.coursera.org/learn/crypto", "Free to audit", 4.8, "23 hours", true},
		{"Security Operations", "edX", "https://www.edx.org/course/cybersecurity-fundamentals", "Free to audit", 4.5, "8 weeks", true},
	},
}

// generic entries cover domains without a curated list.
var genericCatalog = []catalogEntry{
	{"Computer Science", "edX", "https://www.edx.org/course/introduction-computer-science-harvardx-cs50x", "Free to audit", 4.9, "12 weeks", true},
	{"Programming", "freeCodeCamp", "https://www.freecodecamp.org/learn/scientific-computing-with-python/", "Free", 4.7, "50 hours", true},
	{"Algorithms", "Coursera", "https://www.coursera.org/learn/algorithms-part1", "Free to audit", 4.8, "54 hours", true},
	{"Software Engineering", "YouTube", "https://www.youtube.com/watch?v=8jLOx1hD3_o", "Free", 4.6, "10 hours", true},
	{"Git and GitHub", "Coursera", "https://www.coursera.org/learn/introduction-git-github", "Free to audit", 4.7, "9 hours", true},
	{"Technical Interviewing", "Khan Academy", "https://www.khanacademy.org/computing/computer-science/algorithms", "Free", 4.6, "Self-paced", true},
}

// Fallback returns the curated list for the domain with level-appropriate
// titles and deterministic ids.
func Fallback(learningDomain string, level domain.SkillLevel) []domain.Course {
	entries, ok := catalog[strings.ToLower(strings.TrimSpace(learningDomain))]
	if !ok {
		entries = genericCatalog
	}

	out := make([]domain.Course, 0, len(entries))
	for i, e := range entries {
		out = append(out, domain.Course{
			ID:          fmt.Sprintf("curated-%s-%s-%d", slugify(learningDomain), strings.ToLower(string(level)), i+1),
			Title:       levelTitle(e.topic, level),
			Provider:    e.provider,
			URL:         e.url,
			Domain:      learningDomain,
			SkillLevel:  level,
			Price:       e.price,
			Rating:      e.rating,
			Duration:    e.duration,
			Description: fmt.Sprintf("A verified %s course on %s from %s.", strings.ToLower(string(level)), e.topic, e.provider),
			IsFree:      e.isFree,
		})
	}
	return out
}

func levelTitle(topic string, level domain.SkillLevel) string {
	switch level {
	case domain.LevelAdvanced:
		return "Advanced " + topic
	case domain.LevelIntermediate:
		return topic + " in Practice"
	default:
		return "Introduction to " + topic
	}
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
