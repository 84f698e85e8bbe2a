package domain

import "errors"

var (
	// ErrUserNotFound is returned when a user id or username does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists indicates the username or email is already taken.
	ErrUserExists = errors.New("username or email already registered")
	// ErrEmptyQuiz indicates a submission with zero questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrAnswerMismatch indicates answers and questions differ in length.
	ErrAnswerMismatch = errors.New("answers do not match questions")
	// ErrEnrollmentNotFound indicates an unknown enrollment id.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrScheduleNotFound indicates an unknown schedule id.
	ErrScheduleNotFound = errors.New("schedule entry not found")
	// ErrInvalidInput is the generic validation failure for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
)
