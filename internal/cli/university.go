package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/core/registry"
	"github.com/example/clerk/internal/ports/primary"
	"github.com/example/clerk/internal/wire"
)

// UniversityCmd returns the university command group.
func UniversityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "university",
		Short: "Manage students, courses, and enrollments",
	}

	cmd.AddCommand(uniStudentAddCmd())
	cmd.AddCommand(uniCourseAddCmd())
	cmd.AddCommand(uniCourseListCmd())
	cmd.AddCommand(uniEnrollCmd())
	cmd.AddCommand(uniWithdrawCmd())
	cmd.AddCommand(uniGradeCmd())
	cmd.AddCommand(uniGPACmd())
	cmd.AddCommand(uniCourseReportCmd())

	return cmd
}

func uniStudentAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student-add [name]",
		Short: "Register a new student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")

			student, err := wire.UniversityService().AddStudent(context.Background(), args[0], email)
			if err != nil {
				return fmt.Errorf("failed to add student: %w", err)
			}

			fmt.Printf("✓ Added student %d: %s\n", student.ID, student.Name)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Student email")
	return cmd
}

func uniCourseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course-add [code] [title]",
		Short: "Register a new course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, _ := cmd.Flags().GetInt("credits")
			seats, _ := cmd.Flags().GetInt("seats")

			course, err := wire.UniversityService().AddCourse(context.Background(), primary.AddCourseRequest{
				Code:    args[0],
				Title:   args[1],
				Credits: credits,
				Seats:   seats,
			})
			if err != nil {
				return fmt.Errorf("failed to add course: %w", err)
			}

			fmt.Printf("✓ Added course %d: %s %s (%d credits, %d seats)\n",
				course.ID, course.Code, course.Title, course.Credits, course.Seats)
			return nil
		},
	}
	cmd.Flags().Int("credits", 3, "Credit hours")
	cmd.Flags().Int("seats", 30, "Seat count")
	return cmd
}

func uniCourseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "course-list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := wire.UniversityService().ListCourses(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}
			if len(courses) == 0 {
				fmt.Println("No courses found")
				return nil
			}

			fmt.Printf("\n%-5s %-10s %-30s %-8s %s\n", "ID", "CODE", "TITLE", "CREDITS", "SEATS")
			fmt.Println("──────────────────────────────────────────────────────────────")
			for _, c := range courses {
				fmt.Printf("%-5d %-10s %-30s %-8d %d/%d\n",
					c.ID, c.Code, c.Title, c.Credits, c.SeatsTaken, c.Seats)
			}
			fmt.Println()
			return nil
		},
	}
}

func uniEnrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll [student-id] [course-id]",
		Short: "Enroll a student in a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid student id %q", args[0])
			}
			courseID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid course id %q", args[1])
			}

			enrollment, err := wire.UniversityService().Enroll(context.Background(), studentID, courseID)
			if err != nil {
				return fmt.Errorf("failed to enroll: %w", err)
			}

			fmt.Printf("✓ Enrollment %d: student %d in course %d\n",
				enrollment.ID, enrollment.StudentID, enrollment.CourseID)
			return nil
		},
	}
}

func uniWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [enrollment-id]",
		Short: "Withdraw an enrollment and release its seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid enrollment id %q", args[0])
			}
			if err := wire.UniversityService().Withdraw(context.Background(), id); err != nil {
				return fmt.Errorf("failed to withdraw: %w", err)
			}
			fmt.Printf("✓ Withdrew enrollment %d\n", id)
			return nil
		},
	}
}

func uniGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade [enrollment-id] [points]",
		Short: "Finalize an enrollment with grade points (0.0-4.0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid enrollment id %q", args[0])
			}
			points, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid grade points %q", args[1])
			}
			if err := wire.UniversityService().FinalizeGrade(context.Background(), id, points); err != nil {
				return fmt.Errorf("failed to finalize grade: %w", err)
			}
			fmt.Printf("✓ Graded enrollment %d: %.2f\n", id, points)
			return nil
		},
	}
}

func uniGPACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gpa [student-id]",
		Short: "Show a student's credit-weighted GPA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid student id %q", args[0])
			}

			gpa, ok, err := wire.UniversityService().StudentGPA(context.Background(), studentID)
			if err != nil {
				return fmt.Errorf("failed to compute GPA: %w", err)
			}
			if !ok {
				fmt.Printf("Student %d has no completed credits\n", studentID)
				return nil
			}

			fmt.Printf("Student %d GPA: %.2f\n", studentID, gpa)
			return nil
		},
	}
}

func uniCourseReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "course-report [course-id]",
		Short: "Show a course's average and grade distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid course id %q", args[0])
			}

			report, err := wire.UniversityService().CourseReport(context.Background(), courseID)
			if err != nil {
				return fmt.Errorf("failed to build course report: %w", err)
			}

			fmt.Printf("\nCourse %d\n", report.CourseID)
			fmt.Printf("Completed: %d\n", report.Completed)
			if report.HasAverage {
				fmt.Printf("Average:   %.2f\n", report.Average)
			} else {
				fmt.Println("Average:   n/a")
			}

			bands := make([]string, 0, len(report.Distribution))
			for band := range report.Distribution {
				bands = append(bands, string(band))
			}
			sort.Strings(bands)
			for _, band := range bands {
				fmt.Printf("  %-3s %d\n", band, report.Distribution[registry.GradeBand(band)])
			}
			fmt.Println()
			return nil
		},
	}
}
