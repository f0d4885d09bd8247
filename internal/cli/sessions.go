package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rowanmaddox/twistcube/internal/session"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded play sessions",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum sessions to list")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := db.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	list, err := session.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No recorded sessions")
		return nil
	}

	if verbose {
		fmt.Printf("Database: %s\n\n", db.Path())
	}
	for _, s := range list {
		status := "active"
		if s.EndedAt != nil {
			status = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		fmt.Printf("%s  %s  %3d turns  %s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.TurnCount,
			status)
	}
	return nil
}
