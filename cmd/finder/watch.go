package main

import (
	"context"
	"esveikata-finder/internal/app/models"
	"esveikata-finder/internal/app/services/core/finder"
	"esveikata-finder/internal/pkg/dto/responses"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var timed bool

	cmd := &cobra.Command{
		Use:   "watch <specialist-id>",
		Short: "Search appointment slots for a specialist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			specialists, err := a.finder.Dependencies.Directory.Specialists(ctx)
			if err != nil {
				return err
			}
			specialist, ok := findByID(specialists, models.ID(args[0]))
			if !ok {
				return fmt.Errorf("specialist %s not found", args[0])
			}

			session := finder.NewSession("cli", a.finder.Dependencies, a.finder.Settings)
			defer session.Close()

			done, err := session.Select(ctx, specialist)
			if err != nil {
				return err
			}
			select {
			case <-done:
			case <-ctx.Done():
				return nil
			}

			out := cmd.OutOrStdout()
			printSession(out, session.View(), session.State())
			if !timed {
				return nil
			}

			_, err = session.ToggleTimedSearch(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Tikrinti kas %s, Ctrl+C stabdo paiešką\n", a.finder.Settings.Period)

			return follow(ctx, out, session, time.Second)
		},
	}

	cmd.Flags().BoolVar(&timed, "timed", false, "repeat the search on the configured period until interrupted")
	return cmd
}

// follow prints the session again whenever a timed lookup has finished,
// checking every interval.
func follow(ctx context.Context, out io.Writer, session *finder.Session, interval time.Duration) error {
	last := session.State()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			state := session.State()
			if state.LastSearchedAt.Equal(last.LastSearchedAt) && state.LastError == last.LastError {
				continue
			}
			last = state
			printSession(out, session.View(), state)
		}
	}
}

func printSession(out io.Writer, view *responses.Session, state finder.State) {
	if view.SelectedSpecialist != nil {
		fmt.Fprintf(out, "%s (%s)\n", view.SelectedSpecialist.FullName, time.Now().Format("2006-01-02 15:04:05"))
	}
	if state.LastError != nil {
		fmt.Fprintf(out, "Paieška nepavyko: %v\n", state.LastError)
	}

	rows := make([][]string, 0, len(view.Slots))
	for _, slot := range view.Slots {
		rows = append(rows, []string{slot.ServiceName, slot.OrganizationName, slot.EarliestTime, slot.BookingURL})
	}
	renderTable(out, []string{"Paslauga", "Įstaiga", "Laikas", "Nuoroda"}, rows)

	for _, message := range view.EmptyMessages {
		fmt.Fprintln(out, message)
	}
}

func findByID(specialists []models.Specialist, id models.ID) (models.Specialist, bool) {
	for _, specialist := range specialists {
		if specialist.ID == id {
			return specialist, true
		}
	}
	return models.Specialist{}, false
}
