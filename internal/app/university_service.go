package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/clerk/internal/core/registry"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/store"
)

// UniversityServiceImpl implements the UniversityService interface over
// the ledger. GPA and course statistics are recomputed from enrollments on
// every call.
type UniversityServiceImpl struct {
	ledger *Ledger
}

// NewUniversityService creates a new UniversityService backed by the
// given ledger.
func NewUniversityService(ledger *Ledger) *UniversityServiceImpl {
	return &UniversityServiceImpl{ledger: ledger}
}

// AddStudent registers a new student.
func (s *UniversityServiceImpl) AddStudent(ctx context.Context, name, email string) (*registry.Student, error) {
	if name == "" {
		return nil, fmt.Errorf("student name is required: %w", store.ErrInvalidInput)
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email %q is malformed: %w", email, store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	student := &registry.Student{Name: name, Email: email}
	if _, err := s.ledger.Students.Add(student); err != nil {
		return nil, err
	}
	return student, nil
}

// AddCourse registers a new course.
func (s *UniversityServiceImpl) AddCourse(ctx context.Context, req primary.AddCourseRequest) (*registry.Course, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("course code is required: %w", store.ErrInvalidInput)
	}
	if req.Credits < 1 {
		return nil, fmt.Errorf("course needs at least one credit: %w", store.ErrInvalidInput)
	}
	if req.Seats < 1 {
		return nil, fmt.Errorf("course needs at least one seat: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	course := &registry.Course{
		Code:    req.Code,
		Title:   req.Title,
		Credits: req.Credits,
		Seats:   req.Seats,
	}
	if _, err := s.ledger.Courses.Add(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Enroll enrolls a student in a course. The seat count moves in the same
// operation as the enrollment record.
func (s *UniversityServiceImpl) Enroll(ctx context.Context, studentID, courseID int) (*registry.Enrollment, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Students.Has(studentID) {
		return nil, fmt.Errorf("student %d: %w", studentID, store.ErrReferentialViolation)
	}
	course, err := s.ledger.Courses.Get(courseID)
	if err != nil {
		return nil, fmt.Errorf("course %d: %w", courseID, store.ErrReferentialViolation)
	}
	if course.SeatsTaken >= course.Seats {
		return nil, fmt.Errorf("course %s is full (%d seats): %w", course.Code, course.Seats, store.ErrCapacityExceeded)
	}

	duplicate := false
	s.ledger.Enrollments.EachActive(func(e *registry.Enrollment) bool {
		if e.StudentID == studentID && e.CourseID == courseID && registry.HoldsSeat(e.Status) {
			duplicate = true
			return false
		}
		return true
	})
	if duplicate {
		return nil, fmt.Errorf("student %d already enrolled in course %s: %w", studentID, course.Code, store.ErrInvalidInput)
	}

	enrollment := &registry.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    registry.InitialEnrollmentStatus(),
	}
	if _, err := s.ledger.Enrollments.Add(enrollment); err != nil {
		return nil, err
	}

	course.SeatsTaken++
	return enrollment, nil
}

// Withdraw withdraws an open enrollment and releases its seat.
func (s *UniversityServiceImpl) Withdraw(ctx context.Context, enrollmentID int) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	enrollment, err := s.ledger.Enrollments.Get(enrollmentID)
	if err != nil {
		return err
	}
	if !registry.CanTransitionEnrollment(enrollment.Status, registry.EnrollmentWithdrawn) {
		return fmt.Errorf("enrollment %d: %s -> %s: %w", enrollmentID, enrollment.Status, registry.EnrollmentWithdrawn, store.ErrInvalidTransition)
	}
	enrollment.Status = registry.EnrollmentWithdrawn

	if course, err := s.ledger.Courses.Get(enrollment.CourseID); err == nil && course.SeatsTaken > 0 {
		course.SeatsTaken--
	}
	return nil
}

// FinalizeGrade completes an open enrollment with its grade points.
func (s *UniversityServiceImpl) FinalizeGrade(ctx context.Context, enrollmentID int, gradePoints float64) error {
	if !registry.ValidGradePoints(gradePoints) {
		return fmt.Errorf("grade points %v outside 0.0-4.0: %w", gradePoints, store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	enrollment, err := s.ledger.Enrollments.Get(enrollmentID)
	if err != nil {
		return err
	}
	if !registry.CanTransitionEnrollment(enrollment.Status, registry.EnrollmentCompleted) {
		return fmt.Errorf("enrollment %d: %s -> %s: %w", enrollmentID, enrollment.Status, registry.EnrollmentCompleted, store.ErrInvalidTransition)
	}

	enrollment.Status = registry.EnrollmentCompleted
	enrollment.GradePoints = gradePoints
	return nil
}

// StudentGPA computes the credit-weighted GPA from completed enrollments.
func (s *UniversityServiceImpl) StudentGPA(ctx context.Context, studentID int) (float64, bool, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Students.Has(studentID) {
		return 0, false, fmt.Errorf("student %d: %w", studentID, store.ErrNotFound)
	}

	var mine []*registry.Enrollment
	s.ledger.Enrollments.Each(func(e *registry.Enrollment) bool {
		if e.StudentID == studentID {
			mine = append(mine, e)
		}
		return true
	})

	gpa, ok := registry.WeightedGPA(mine, func(courseID int) (int, bool) {
		course, err := s.ledger.Courses.GetAny(courseID)
		if err != nil {
			return 0, false
		}
		return course.Credits, true
	})
	return gpa, ok, nil
}

// CourseReport computes the course average and grade distribution.
func (s *UniversityServiceImpl) CourseReport(ctx context.Context, courseID int) (*primary.CourseReport, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	if _, err := s.ledger.Courses.Get(courseID); err != nil {
		return nil, err
	}

	enrollments := s.ledger.Enrollments.Records()
	avg, hasAvg := registry.CourseAverage(enrollments, courseID)
	dist := registry.GradeDistribution(enrollments, courseID)

	completed := 0
	for _, n := range dist {
		completed += n
	}

	return &primary.CourseReport{
		CourseID:     courseID,
		Completed:    completed,
		Average:      avg,
		HasAverage:   hasAvg,
		Distribution: dist,
	}, nil
}

// GetEnrollment retrieves an active enrollment by id.
func (s *UniversityServiceImpl) GetEnrollment(ctx context.Context, enrollmentID int) (*registry.Enrollment, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Enrollments.Get(enrollmentID)
}

// GetCourse retrieves an active course by id.
func (s *UniversityServiceImpl) GetCourse(ctx context.Context, courseID int) (*registry.Course, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Courses.Get(courseID)
}

// ListCourses lists active courses in insertion order.
func (s *UniversityServiceImpl) ListCourses(ctx context.Context) ([]*registry.Course, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	var courses []*registry.Course
	s.ledger.Courses.EachActive(func(c *registry.Course) bool {
		courses = append(courses, c)
		return true
	})
	return courses, nil
}
