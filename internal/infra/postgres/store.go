package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Store is the Postgres implementation of app.Store. Question sets,
// answer sequences and domain selections are stored as JSONB.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	domains, err := json.Marshal(user.SelectedDomains)
	if err != nil {
		return fmt.Errorf("marshal domains: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, full_name, selected_domains, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FullName, domains, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userColumns = `id, username, email, password_hash, full_name, selected_domains, created_at`

func (s *Store) UserByID(ctx context.Context, id string) (domain.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (s *Store) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username))
}

func (s *Store) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (s *Store) scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	var domains []byte
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &domains, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	if len(domains) > 0 {
		if err := json.Unmarshal(domains, &user.SelectedDomains); err != nil {
			return domain.User{}, fmt.Errorf("unmarshal domains: %w", err)
		}
	}
	return user, nil
}

func (s *Store) SetSelectedDomains(ctx context.Context, userID string, domains []string) error {
	data, err := json.Marshal(domains)
	if err != nil {
		return fmt.Errorf("marshal domains: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET selected_domains=$2 WHERE id=$1`, userID, data)
	if err != nil {
		return fmt.Errorf("update domains: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *Store) AppendSkillLevel(ctx context.Context, level domain.DomainSkillLevel) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO domain_skill_levels (id, user_id, domain, skill_level, determined_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		level.ID, level.UserID, level.Domain, level.SkillLevel, level.DeterminedAt)
	if err != nil {
		return fmt.Errorf("insert skill level: %w", err)
	}
	return nil
}

// CurrentSkillLevels keeps one row per domain, the one with the latest
// determined_at. The explicit ORDER BY ... DESC matters: returning the
// first-inserted row here once caused stale levels to drive
// recommendations after a retake.
func (s *Store) CurrentSkillLevels(ctx context.Context, userID string) (map[string]domain.SkillLevel, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT ON (domain) domain, skill_level
		 FROM domain_skill_levels
		 WHERE user_id=$1
		 ORDER BY domain, determined_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query skill levels: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.SkillLevel)
	for rows.Next() {
		var d string
		var level domain.SkillLevel
		if err := rows.Scan(&d, &level); err != nil {
			return nil, fmt.Errorf("scan skill level: %w", err)
		}
		out[d] = level
	}
	return out, rows.Err()
}

func (s *Store) CreateQuizAttempt(ctx context.Context, attempt domain.QuizAttempt) error {
	questions, err := json.Marshal(attempt.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO quiz_attempts (id, user_id, domain, questions, answers, score, total_questions, skill_level_determined, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		attempt.ID, attempt.UserID, attempt.Domain, questions, answers,
		attempt.Score, attempt.TotalQuestions, attempt.SkillLevelDetermined, attempt.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert quiz attempt: %w", err)
	}
	return nil
}

func (s *Store) RecentQuizAttempts(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, domain, questions, answers, score, total_questions, skill_level_determined, completed_at
		 FROM quiz_attempts
		 WHERE user_id=$1
		 ORDER BY completed_at DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.QuizAttempt
	for rows.Next() {
		var a domain.QuizAttempt
		var questions, answers []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.Domain, &questions, &answers,
			&a.Score, &a.TotalQuestions, &a.SkillLevelDetermined, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		if err := json.Unmarshal(questions, &a.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
		if err := json.Unmarshal(answers, &a.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) CreateEnrollment(ctx context.Context, e domain.EnrolledCourse) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO enrolled_courses (id, user_id, course_title, course_platform, course_url, domain, is_paid, progress, completed, enrolled_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.UserID, e.CourseTitle, e.CoursePlatform, e.CourseURL, e.Domain,
		e.IsPaid, e.Progress, e.Completed, e.EnrolledAt)
	if err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

const enrollmentColumns = `id, user_id, course_title, course_platform, course_url, domain, is_paid, progress, completed, enrolled_at`

func (s *Store) EnrollmentsByUser(ctx context.Context, userID string) ([]domain.EnrolledCourse, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+enrollmentColumns+` FROM enrolled_courses WHERE user_id=$1 ORDER BY enrolled_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	var out []domain.EnrolledCourse
	for rows.Next() {
		var e domain.EnrolledCourse
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseTitle, &e.CoursePlatform, &e.CourseURL,
			&e.Domain, &e.IsPaid, &e.Progress, &e.Completed, &e.EnrolledAt); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateProgress clamps, writes progress and the completion flag in one
// statement. Completion is sticky: reaching 100 sets it, and a later
// lower progress value does not unset it.
func (s *Store) UpdateProgress(ctx context.Context, enrollmentID string, progress int) (domain.EnrolledCourse, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var e domain.EnrolledCourse
	err := s.pool.QueryRow(ctx,
		`UPDATE enrolled_courses
		 SET progress=$2, completed=(completed OR $2 >= 100)
		 WHERE id=$1
		 RETURNING `+enrollmentColumns,
		enrollmentID, progress).Scan(&e.ID, &e.UserID, &e.CourseTitle, &e.CoursePlatform,
		&e.CourseURL, &e.Domain, &e.IsPaid, &e.Progress, &e.Completed, &e.EnrolledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EnrolledCourse{}, domain.ErrEnrollmentNotFound
		}
		return domain.EnrolledCourse{}, fmt.Errorf("update progress: %w", err)
	}
	return e, nil
}

func (s *Store) AppendChatMessage(ctx context.Context, msg domain.ChatMessage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO chat_messages (id, user_id, role, content, sent_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.UserID, msg.Role, msg.Content, msg.Timestamp)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (s *Store) ChatHistory(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch the newest N, then reverse into chronological order.
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, role, content, sent_at
		 FROM chat_messages
		 WHERE user_id=$1
		 ORDER BY sent_at DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *Store) CreateSchedule(ctx context.Context, entry domain.LearningSchedule) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO learning_schedules (id, user_id, course_id, title, description, due_date, completed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, nullIfEmpty(entry.CourseID), entry.Title, entry.Description,
		entry.DueDate, entry.Completed, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

const scheduleColumns = `id, user_id, COALESCE(course_id, ''), title, description, due_date, completed, created_at`

func (s *Store) SchedulesByUser(ctx context.Context, userID string) ([]domain.LearningSchedule, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM learning_schedules WHERE user_id=$1 ORDER BY due_date`, userID)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	var out []domain.LearningSchedule
	for rows.Next() {
		var entry domain.LearningSchedule
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.CourseID, &entry.Title,
			&entry.Description, &entry.DueDate, &entry.Completed, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) UpdateSchedule(ctx context.Context, id string, patch app.SchedulePatch) (domain.LearningSchedule, error) {
	sets := make([]string, 0, 4)
	args := []interface{}{id}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if len(sets) == 0 {
		return domain.LearningSchedule{}, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	var entry domain.LearningSchedule
	query := `UPDATE learning_schedules SET ` + strings.Join(sets, ", ") +
		` WHERE id=$1 RETURNING ` + scheduleColumns
	err := s.pool.QueryRow(ctx, query, args...).Scan(&entry.ID, &entry.UserID, &entry.CourseID,
		&entry.Title, &entry.Description, &entry.DueDate, &entry.Completed, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LearningSchedule{}, domain.ErrScheduleNotFound
		}
		return domain.LearningSchedule{}, fmt.Errorf("update schedule: %w", err)
	}
	return entry, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
