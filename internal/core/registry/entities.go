// Package registry contains the pure business logic for the university
// domain: enrollment status machine, seat accounting, and grade
// aggregation. GPA and course averages are recomputed from enrollments on
// every read; no cached aggregate exists to go stale. No I/O.
package registry

import "github.com/example/clerk/internal/store"

// Student is an enrolled student. GPA is never stored; see WeightedGPA.
type Student struct {
	store.Meta
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Course has a fixed number of seats. SeatsTaken is adjusted at the enroll
// and withdraw call sites, in the same operation that changes the
// enrollment.
type Course struct {
	store.Meta
	Code       string `json:"code"`
	Title      string `json:"title"`
	Credits    int    `json:"credits"`
	Seats      int    `json:"seats"`
	SeatsTaken int    `json:"seats_taken"`
}

// Enrollment joins a student to a course. GradePoints is meaningful only
// once the status is completed.
type Enrollment struct {
	store.Meta
	StudentID   int              `json:"student_id"`
	CourseID    int              `json:"course_id"`
	GradePoints float64          `json:"grade_points"`
	Status      EnrollmentStatus `json:"status"`
}

// EnrollmentStatus represents the possible states of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentWithdrawn EnrollmentStatus = "withdrawn"
)

// enrollmentTransitions is the allow-list of enrollment status changes.
// Completed and withdrawn are terminal.
var enrollmentTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	EnrollmentEnrolled: {EnrollmentCompleted, EnrollmentWithdrawn},
}

// InitialEnrollmentStatus returns the status assigned to a new enrollment.
func InitialEnrollmentStatus() EnrollmentStatus {
	return EnrollmentEnrolled
}

// CanTransitionEnrollment reports whether an enrollment status change is
// allowed.
func CanTransitionEnrollment(from, to EnrollmentStatus) bool {
	for _, allowed := range enrollmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// HoldsSeat reports whether an enrollment in this status occupies a course
// seat. Withdrawing releases the seat; completing keeps it for the term.
func HoldsSeat(s EnrollmentStatus) bool {
	return s == EnrollmentEnrolled || s == EnrollmentCompleted
}

// ValidGradePoints reports whether p is on the 0.0–4.0 grade scale.
func ValidGradePoints(p float64) bool {
	return p >= 0 && p <= 4
}
