package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrTestNotFound       = errors.New("test not found")
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrResumeNotFound     = errors.New("resume not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrScoreTooLow        = errors.New("score too low for a certificate")
	ErrCourseNotCompleted = errors.New("course not completed")
	ErrUnsupportedFile    = errors.New("only PDF and DOCX files are supported")
	ErrEmptyResumeText    = errors.New("failed to extract text from resume")
)
