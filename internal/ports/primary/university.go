package primary

import (
	"context"

	"github.com/example/clerk/internal/core/registry"
)

// UniversityService defines the primary port for the university domain.
type UniversityService interface {
	// AddStudent registers a new student.
	AddStudent(ctx context.Context, name, email string) (*registry.Student, error)

	// AddCourse registers a new course with a fixed seat count.
	AddCourse(ctx context.Context, req AddCourseRequest) (*registry.Course, error)

	// Enroll enrolls a student in a course, taking one seat. Duplicate
	// active enrollments for the same pair are rejected.
	Enroll(ctx context.Context, studentID, courseID int) (*registry.Enrollment, error)

	// Withdraw withdraws an open enrollment and releases its seat.
	Withdraw(ctx context.Context, enrollmentID int) error

	// FinalizeGrade completes an open enrollment with grade points on the
	// 0.0-4.0 scale.
	FinalizeGrade(ctx context.Context, enrollmentID int, gradePoints float64) error

	// StudentGPA computes the credit-weighted GPA from completed
	// enrollments. ok is false when the student has no completed credits.
	StudentGPA(ctx context.Context, studentID int) (gpa float64, ok bool, err error)

	// CourseReport computes the course average and grade distribution.
	CourseReport(ctx context.Context, courseID int) (*CourseReport, error)

	// GetEnrollment retrieves an active enrollment by id.
	GetEnrollment(ctx context.Context, enrollmentID int) (*registry.Enrollment, error)

	// GetCourse retrieves an active course by id.
	GetCourse(ctx context.Context, courseID int) (*registry.Course, error)

	// ListCourses lists active courses in insertion order.
	ListCourses(ctx context.Context) ([]*registry.Course, error)
}

// AddCourseRequest contains parameters for registering a course.
type AddCourseRequest struct {
	Code    string
	Title   string
	Credits int
	Seats   int
}

// CourseReport is the aggregate view of one course.
type CourseReport struct {
	CourseID     int
	Completed    int
	Average      float64
	HasAverage   bool
	Distribution map[registry.GradeBand]int
}
