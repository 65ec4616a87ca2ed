package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/example/clerk/internal/core/registry"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/store"
)

func TestUniversityService_GPA(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	student, _ := svc.AddStudent(ctx, "Ada", "ada@example.edu")
	algo, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 30})
	calc, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "MA201", Title: "Calculus", Credits: 4, Seats: 30})

	e1, err := svc.Enroll(ctx, student.ID, algo.ID)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	e2, _ := svc.Enroll(ctx, student.ID, calc.ID)

	if err := svc.FinalizeGrade(ctx, e1.ID, 4.0); err != nil {
		t.Fatalf("FinalizeGrade failed: %v", err)
	}
	if err := svc.FinalizeGrade(ctx, e2.ID, 3.0); err != nil {
		t.Fatalf("FinalizeGrade failed: %v", err)
	}

	gpa, ok, err := svc.StudentGPA(ctx, student.ID)
	if err != nil || !ok {
		t.Fatalf("StudentGPA failed: gpa=%v ok=%v err=%v", gpa, ok, err)
	}
	if math.Abs(gpa-3.43) > 0.01 {
		t.Errorf("GPA = %v, want 3.43 +/- 0.01", gpa)
	}

	// Recompute-on-read: asking twice gives the same answer.
	again, _, _ := svc.StudentGPA(ctx, student.ID)
	if again != gpa {
		t.Errorf("GPA changed across reads with no mutation: %v then %v", gpa, again)
	}
}

func TestUniversityService_SeatAccounting(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	course, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 2})
	s1, _ := svc.AddStudent(ctx, "Ada", "")
	s2, _ := svc.AddStudent(ctx, "Grace", "")
	s3, _ := svc.AddStudent(ctx, "Linus", "")

	e1, _ := svc.Enroll(ctx, s1.ID, course.ID)
	svc.Enroll(ctx, s2.ID, course.ID)

	got, _ := svc.GetCourse(ctx, course.ID)
	if got.SeatsTaken != 2 {
		t.Errorf("SeatsTaken = %d, want 2", got.SeatsTaken)
	}

	// Full course rejects further enrollments.
	_, err := svc.Enroll(ctx, s3.ID, course.ID)
	if !errors.Is(err, store.ErrCapacityExceeded) {
		t.Errorf("enroll in full course: err = %v, want ErrCapacityExceeded", err)
	}

	// Withdrawing releases the seat.
	if err := svc.Withdraw(ctx, e1.ID); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	got, _ = svc.GetCourse(ctx, course.ID)
	if got.SeatsTaken != 1 {
		t.Errorf("SeatsTaken = %d after withdraw, want 1", got.SeatsTaken)
	}
	if _, err := svc.Enroll(ctx, s3.ID, course.ID); err != nil {
		t.Errorf("enroll after withdraw failed: %v", err)
	}

	// A withdrawn enrollment is terminal.
	if err := svc.FinalizeGrade(ctx, e1.ID, 3.0); !errors.Is(err, store.ErrInvalidTransition) {
		t.Errorf("grade withdrawn enrollment: err = %v, want ErrInvalidTransition", err)
	}
}

func TestUniversityService_RejectsDuplicateEnrollment(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	course, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 10})
	student, _ := svc.AddStudent(ctx, "Ada", "")

	svc.Enroll(ctx, student.ID, course.ID)
	_, err := svc.Enroll(ctx, student.ID, course.ID)
	if !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("duplicate enrollment: err = %v, want ErrInvalidInput", err)
	}
}

func TestUniversityService_EnrollRejectsBadForeignKeys(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	course, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 10})
	student, _ := svc.AddStudent(ctx, "Ada", "")

	if _, err := svc.Enroll(ctx, 999, course.ID); !errors.Is(err, store.ErrReferentialViolation) {
		t.Errorf("enroll unknown student: err = %v, want ErrReferentialViolation", err)
	}
	if _, err := svc.Enroll(ctx, student.ID, 999); !errors.Is(err, store.ErrReferentialViolation) {
		t.Errorf("enroll in unknown course: err = %v, want ErrReferentialViolation", err)
	}
	if svc.ledger.Enrollments.Len() != 0 {
		t.Error("failed enrollments mutated the collection")
	}
}

func TestUniversityService_GradeValidation(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	course, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 10})
	student, _ := svc.AddStudent(ctx, "Ada", "")
	enrollment, _ := svc.Enroll(ctx, student.ID, course.ID)

	if err := svc.FinalizeGrade(ctx, enrollment.ID, 4.5); !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("grade above scale: err = %v, want ErrInvalidInput", err)
	}
	if err := svc.FinalizeGrade(ctx, enrollment.ID, -1); !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("negative grade: err = %v, want ErrInvalidInput", err)
	}

	got, _ := svc.GetEnrollment(ctx, enrollment.ID)
	if got.Status != registry.EnrollmentEnrolled {
		t.Errorf("status = %q after rejected grades, want %q", got.Status, registry.EnrollmentEnrolled)
	}
}

func TestUniversityService_CourseReport(t *testing.T) {
	svc := NewUniversityService(testLedger())
	ctx := context.Background()

	course, _ := svc.AddCourse(ctx, primary.AddCourseRequest{Code: "CS101", Title: "Algorithms", Credits: 3, Seats: 10})
	s1, _ := svc.AddStudent(ctx, "Ada", "")
	s2, _ := svc.AddStudent(ctx, "Grace", "")

	e1, _ := svc.Enroll(ctx, s1.ID, course.ID)
	e2, _ := svc.Enroll(ctx, s2.ID, course.ID)
	svc.FinalizeGrade(ctx, e1.ID, 4.0)
	svc.FinalizeGrade(ctx, e2.ID, 2.0)

	report, err := svc.CourseReport(ctx, course.ID)
	if err != nil {
		t.Fatalf("CourseReport failed: %v", err)
	}
	if report.Completed != 2 {
		t.Errorf("Completed = %d, want 2", report.Completed)
	}
	if !report.HasAverage || report.Average != 3.0 {
		t.Errorf("Average = %v (has=%v), want 3.0", report.Average, report.HasAverage)
	}
	if report.Distribution[registry.BandA] != 1 || report.Distribution[registry.BandC] != 1 {
		t.Errorf("Distribution = %v, want 1 A and 1 C", report.Distribution)
	}

	if _, err := svc.CourseReport(ctx, 999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("report for unknown course: err = %v, want ErrNotFound", err)
	}
}
