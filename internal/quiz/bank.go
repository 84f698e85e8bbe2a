package quiz

import (
	"strings"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
)

// Static question banks keyed by normalized domain name. Each domain has
// two banks (fundamentals and applied) that get concatenated before the
// shuffle, so the fallback prefix mixes both.
var questionBanks = map[string][][]domain.Question{
	"web development": {webFundamentals, webApplied},
	"data science":    {dataFundamentals, dataApplied},
	"cybersecurity":   {securityFundamentals, securityApplied},
}

// bankFor returns the concatenated banks for a domain, falling back to
// the general-purpose banks for domains without curated content.
func bankFor(learningDomain string) []domain.Question {
	banks, ok := questionBanks[strings.ToLower(strings.TrimSpace(learningDomain))]
	if !ok {
		banks = [][]domain.Question{generalFundamentals, generalApplied}
	}
	var pool []domain.Question
	for _, bank := range banks {
		pool = append(pool, bank...)
	}
	return pool
}

var webFundamentals = []domain.Question{
	{
		Question:      "Which HTML element is used to link an external stylesheet?",
		Options:       []string{"<style>", "<link>", "<css>", "<script>"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "What does CSS stand for?",
		Options:       []string{"Computer Style Sheets", "Creative Style System", "Cascading Style Sheets", "Coded Style Syntax"},
		CorrectAnswer: 2,
		Difficulty:    "beginner",
	},
	{
		Question:      "Which HTTP method is conventionally used to create a resource?",
		Options:       []string{"GET", "POST", "DELETE", "HEAD"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "In JavaScript, which keyword declares a block-scoped variable?",
		Options:       []string{"var", "let", "def", "dim"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
}

var webApplied = []domain.Question{
	{
		Question:      "What does the same-origin policy restrict?",
		Options:       []string{"CSS specificity", "Cross-origin script access to another page's DOM", "HTTP caching", "Database joins"},
		CorrectAnswer: 1,
		Difficulty:    "intermediate",
	},
	{
		Question:      "Which response status code indicates a resource was permanently moved?",
		Options:       []string{"301", "302", "404", "500"},
		CorrectAnswer: 0,
		Difficulty:    "intermediate",
	},
	{
		Question:      "What problem do web frameworks' virtual DOM implementations address?",
		Options:       []string{"Memory leaks in closures", "Minimizing costly direct DOM mutations", "Blocking network requests", "CSS load order"},
		CorrectAnswer: 1,
		Difficulty:    "advanced",
	},
	{
		Question:      "Which header enables a server to allow cross-origin requests?",
		Options:       []string{"X-Frame-Options", "Access-Control-Allow-Origin", "Content-Security-Policy", "Strict-Transport-Security"},
		CorrectAnswer: 1,
		Difficulty:    "advanced",
	},
}

var dataFundamentals = []domain.Question{
	{
		Question:      "Which measure of central tendency is most affected by outliers?",
		Options:       []string{"Median", "Mode", "Mean", "Range"},
		CorrectAnswer: 2,
		Difficulty:    "beginner",
	},
	{
		Question:      "What does a histogram display?",
		Options:       []string{"Correlation between variables", "The distribution of a single variable", "Time series trends", "Hierarchical categories"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "In a supervised learning task, what are labels?",
		Options:       []string{"Feature names", "Known target values used for training", "Model hyperparameters", "Validation metrics"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "Which Python library is the de facto standard for dataframes?",
		Options:       []string{"numpy", "pandas", "matplotlib", "requests"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
}

var dataApplied = []domain.Question{
	{
		Question:      "What does k-fold cross-validation estimate?",
		Options:       []string{"Training speed", "Out-of-sample model performance", "Feature importance", "Data volume"},
		CorrectAnswer: 1,
		Difficulty:    "intermediate",
	},
	{
		Question:      "A model with high training accuracy but poor test accuracy is most likely:",
		Options:       []string{"Underfitting", "Overfitting", "Well regularized", "Poorly labeled"},
		CorrectAnswer: 1,
		Difficulty:    "intermediate",
	},
	{
		Question:      "Which technique reduces dimensionality while preserving variance?",
		Options:       []string{"One-hot encoding", "Principal component analysis", "Min-max scaling", "Bootstrapping"},
		CorrectAnswer: 1,
		Difficulty:    "advanced",
	},
	{
		Question:      "Why is accuracy a poor metric for a 99:1 imbalanced binary dataset?",
		Options:       []string{"It is too slow to compute", "Predicting the majority class always scores 99%", "It requires probabilities", "It only works for regression"},
		CorrectAnswer: 1,
		Difficulty:    "advanced",
	},
}

var securityFundamentals = []domain.Question{
	{
		Question:      "What does the 'S' in HTTPS provide?",
		Options:       []string{"Speed", "Transport encryption", "Server-side rendering", "Session storage"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "Which of these is a strong defense against password database leaks?",
		Options:       []string{"Storing passwords in plain text", "Hashing with a slow salted algorithm", "Encrypting with a shared key", "Truncating passwords to 8 characters"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "Phishing attacks primarily exploit:",
		Options:       []string{"Buffer overflows", "Human trust", "Weak ciphers", "Open ports"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
}

var securityApplied = []domain.Question{
	{
		Question:      "Parameterized queries are the primary defense against:",
		Options:       []string{"Cross-site scripting", "SQL injection", "CSRF", "Clickjacking"},
		CorrectAnswer: 1,
		Difficulty:    "intermediate",
	},
	{
		Question:      "What does a CSRF token protect against?",
		Options:       []string{"Forged state-changing requests from another site", "Stolen session cookies", "Weak TLS versions", "Directory traversal"},
		CorrectAnswer: 0,
		Difficulty:    "intermediate",
	},
	{
		Question:      "In public key cryptography, what is used to verify a signature?",
		Options:       []string{"The signer's private key", "The signer's public key", "A shared symmetric key", "The message digest alone"},
		CorrectAnswer: 1,
		Difficulty:    "advanced",
	},
}

var generalFundamentals = []domain.Question{
	{
		Question:      "Which data structure offers O(1) average lookup by key?",
		Options:       []string{"Linked list", "Hash table", "Binary tree", "Stack"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "What does a compiler do?",
		Options:       []string{"Executes code line by line", "Translates source code to another form", "Manages memory at runtime", "Schedules threads"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
	{
		Question:      "Binary search requires the input to be:",
		Options:       []string{"Unique", "Sorted", "Numeric", "Immutable"},
		CorrectAnswer: 1,
		Difficulty:    "beginner",
	},
}

var generalApplied = []domain.Question{
	{
		Question:      "What is the time complexity of binary search?",
		Options:       []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
		CorrectAnswer: 1,
		Difficulty:    "intermediate",
	},
	{
		Question:      "Which property is NOT part of ACID transactions?",
		Options:       []string{"Atomicity", "Consistency", "Idempotency", "Durability"},
		CorrectAnswer: 2,
		Difficulty:    "intermediate",
	},
	{
		Question:      "A deadlock requires all of the following EXCEPT:",
		Options:       []string{"Mutual exclusion", "Hold and wait", "Preemption", "Circular wait"},
		CorrectAnswer: 2,
		Difficulty:    "advanced",
	},
}
