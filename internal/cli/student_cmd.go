package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
	"github.com/degreekit/advisor/internal/domain"
)

func newStudentCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage student profiles",
	}

	cmd.AddCommand(
		newStudentCreateCmd(a),
		newStudentListCmd(a),
		newStudentShowCmd(a),
		newStudentSetTrackCmd(a),
		newStudentAddCourseCmd(a),
		newStudentSetConstraintsCmd(a),
	)

	return cmd
}

func newStudentCreateCmd(a *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new student profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := a.Students.CreateStudent(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created student %s (%s)\n", student.Name, student.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Student name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newStudentListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := a.Students.ListStudents(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newStudentShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <student-id>",
		Short: "Show a student's profile and transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := a.Students.GetStudent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudent(student))
			return nil
		},
	}
}

func newStudentSetTrackCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-track <student-id> <track-id>",
		Short: "Declare a student's specialization track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Students.SetTrack(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Declared track %s\n", args[1])
			return nil
		},
	}
}

func newStudentAddCourseCmd(a *App) *cobra.Command {
	var grade, term string

	cmd := &cobra.Command{
		Use:   "add-course <student-id> <course-id>",
		Short: "Record a completed course on the transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := domain.ParseGrade(grade)
			if err != nil {
				return err
			}
			tm, err := domain.ParseTerm(term)
			if err != nil {
				return err
			}
			row := domain.CompletedCourse{CourseID: args[1], Grade: g, Term: tm}
			if err := a.Students.AddCompletedCourse(cmd.Context(), args[0], row); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s with grade %s in %s\n", args[1], g, tm.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "Letter grade (A+ through F)")
	cmd.Flags().StringVar(&term, "term", "", "Term taken, e.g. fall-2025")
	_ = cmd.MarkFlagRequired("grade")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func newStudentSetConstraintsCmd(a *App) *cobra.Command {
	var start string
	var maxCredits, maxSemesters int
	var summer bool

	cmd := &cobra.Command{
		Use:   "set-constraints <student-id>",
		Short: "Set a student's planning constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTerm, err := domain.ParseTerm(start)
			if err != nil {
				return err
			}
			c := domain.Constraints{
				StartTerm:             startTerm,
				MaxCreditsPerSemester: maxCredits,
				MaxSemesters:          maxSemesters,
				SummerAllowed:         summer,
			}
			if err := a.Students.SetConstraints(cmd.Context(), args[0], c); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Constraints updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start term, e.g. fall-2026")
	cmd.Flags().IntVar(&maxCredits, "max-credits", 15, "Credit cap per semester")
	cmd.Flags().IntVar(&maxSemesters, "semesters", 8, "Maximum semesters to plan")
	cmd.Flags().BoolVar(&summer, "summer", false, "Allow summer terms")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}
