package registry

// CourseCredits resolves a course id to its credit weight. The service
// layer backs this with the course collection.
type CourseCredits func(courseID int) (int, bool)

// WeightedGPA computes a student's credit-weighted GPA over completed
// enrollments. Enrollments whose course cannot be resolved are skipped.
// The second return is false when the student has no completed credits.
func WeightedGPA(enrollments []*Enrollment, credits CourseCredits) (float64, bool) {
	var points float64
	var weight int

	for _, e := range enrollments {
		if !e.Active || e.Status != EnrollmentCompleted {
			continue
		}
		c, ok := credits(e.CourseID)
		if !ok || c <= 0 {
			continue
		}
		points += e.GradePoints * float64(c)
		weight += c
	}

	if weight == 0 {
		return 0, false
	}
	return points / float64(weight), true
}

// CourseAverage computes the mean grade points over completed enrollments
// in one course. The second return is false when nothing is completed.
func CourseAverage(enrollments []*Enrollment, courseID int) (float64, bool) {
	var sum float64
	var n int

	for _, e := range enrollments {
		if !e.Active || e.CourseID != courseID || e.Status != EnrollmentCompleted {
			continue
		}
		sum += e.GradePoints
		n++
	}

	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// GradeBand is a letter bucket of the grade distribution.
type GradeBand string

const (
	BandA GradeBand = "A"
	BandB GradeBand = "B"
	BandC GradeBand = "C"
	BandD GradeBand = "D"
	BandF GradeBand = "F"
)

// BandFor maps grade points to a letter band on the usual 4.0 scale.
func BandFor(points float64) GradeBand {
	switch {
	case points >= 3.5:
		return BandA
	case points >= 2.5:
		return BandB
	case points >= 1.5:
		return BandC
	case points >= 0.5:
		return BandD
	default:
		return BandF
	}
}

// GradeDistribution counts completed enrollments per letter band. A zero
// courseID means all courses.
func GradeDistribution(enrollments []*Enrollment, courseID int) map[GradeBand]int {
	dist := make(map[GradeBand]int)
	for _, e := range enrollments {
		if !e.Active || e.Status != EnrollmentCompleted {
			continue
		}
		if courseID != 0 && e.CourseID != courseID {
			continue
		}
		dist[BandFor(e.GradePoints)]++
	}
	return dist
}
