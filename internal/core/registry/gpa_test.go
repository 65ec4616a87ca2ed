package registry

import (
	"math"
	"testing"
)

func creditsTable(table map[int]int) CourseCredits {
	return func(courseID int) (int, bool) {
		c, ok := table[courseID]
		return c, ok
	}
}

func completed(studentID, courseID int, points float64) *Enrollment {
	e := &Enrollment{StudentID: studentID, CourseID: courseID, GradePoints: points, Status: EnrollmentCompleted}
	e.Meta.Active = true
	return e
}

func TestWeightedGPA(t *testing.T) {
	enrollments := []*Enrollment{
		completed(1, 10, 4.0),
		completed(1, 11, 3.0),
	}
	credits := creditsTable(map[int]int{10: 3, 11: 4})

	gpa, ok := WeightedGPA(enrollments, credits)
	if !ok {
		t.Fatal("WeightedGPA reported no completed credits")
	}

	// (4.0*3 + 3.0*4) / (3+4) = 24/7
	want := 24.0 / 7.0
	if math.Abs(gpa-want) > 0.01 {
		t.Errorf("WeightedGPA = %v, want %v", gpa, want)
	}
}

func TestWeightedGPA_SkipsOpenAndWithdrawn(t *testing.T) {
	open := &Enrollment{StudentID: 1, CourseID: 10, GradePoints: 4, Status: EnrollmentEnrolled}
	open.Meta.Active = true
	withdrawn := &Enrollment{StudentID: 1, CourseID: 11, GradePoints: 4, Status: EnrollmentWithdrawn}
	withdrawn.Meta.Active = true

	enrollments := []*Enrollment{open, withdrawn, completed(1, 12, 2.0)}
	credits := creditsTable(map[int]int{10: 3, 11: 3, 12: 3})

	gpa, ok := WeightedGPA(enrollments, credits)
	if !ok {
		t.Fatal("WeightedGPA reported no completed credits")
	}
	if gpa != 2.0 {
		t.Errorf("WeightedGPA = %v, want 2.0 (only the completed enrollment counts)", gpa)
	}
}

func TestWeightedGPA_NoCompletedCredits(t *testing.T) {
	if _, ok := WeightedGPA(nil, creditsTable(nil)); ok {
		t.Error("WeightedGPA ok = true with no enrollments, want false")
	}
}

func TestCourseAverage(t *testing.T) {
	enrollments := []*Enrollment{
		completed(1, 10, 4.0),
		completed(2, 10, 2.0),
		completed(3, 11, 1.0),
	}

	avg, ok := CourseAverage(enrollments, 10)
	if !ok {
		t.Fatal("CourseAverage reported no completed enrollments")
	}
	if avg != 3.0 {
		t.Errorf("CourseAverage = %v, want 3.0", avg)
	}

	if _, ok := CourseAverage(enrollments, 99); ok {
		t.Error("CourseAverage ok = true for course with no completions, want false")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		points float64
		want   GradeBand
	}{
		{4.0, BandA}, {3.5, BandA}, {3.49, BandB}, {2.5, BandB},
		{2.0, BandC}, {1.0, BandD}, {0.4, BandF}, {0, BandF},
	}
	for _, tt := range tests {
		if got := BandFor(tt.points); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestGradeDistribution(t *testing.T) {
	enrollments := []*Enrollment{
		completed(1, 10, 4.0),
		completed(2, 10, 3.7),
		completed(3, 10, 2.0),
		completed(4, 11, 1.0),
	}

	dist := GradeDistribution(enrollments, 10)
	if dist[BandA] != 2 || dist[BandC] != 1 {
		t.Errorf("GradeDistribution(course 10) = %v, want 2 A and 1 C", dist)
	}
	if dist[BandD] != 0 {
		t.Errorf("GradeDistribution(course 10) leaked other course: %v", dist)
	}

	all := GradeDistribution(enrollments, 0)
	if all[BandD] != 1 {
		t.Errorf("GradeDistribution(all) = %v, want 1 D", all)
	}
}

func TestCanTransitionEnrollment(t *testing.T) {
	if !CanTransitionEnrollment(EnrollmentEnrolled, EnrollmentCompleted) {
		t.Error("enrolled -> completed should be allowed")
	}
	if !CanTransitionEnrollment(EnrollmentEnrolled, EnrollmentWithdrawn) {
		t.Error("enrolled -> withdrawn should be allowed")
	}
	if CanTransitionEnrollment(EnrollmentWithdrawn, EnrollmentEnrolled) {
		t.Error("withdrawn -> enrolled should be rejected")
	}
	if CanTransitionEnrollment(EnrollmentCompleted, EnrollmentWithdrawn) {
		t.Error("completed -> withdrawn should be rejected")
	}
}
