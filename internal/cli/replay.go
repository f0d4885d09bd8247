package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanmaddox/twistcube"
	"github.com/rowanmaddox/twistcube/internal/render"
	"github.com/rowanmaddox/twistcube/internal/session"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a recorded session onto a solved cube",
	Long: `Re-apply every turn of a recorded session, in order, to a solved cube
and print the moves and the resulting state.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := db.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	sessionID := args[0]
	if _, err := session.NewSessionRepository(db).Get(sessionID); err != nil {
		return err
	}

	moves, err := session.NewTurnRepository(db).Moves(sessionID)
	if err != nil {
		return err
	}

	cube := twistcube.New()
	if err := cube.ApplyMoves(moves...); err != nil {
		return fmt.Errorf("failed to replay session: %w", err)
	}

	fmt.Printf("Session %s: %d turns\n", sessionID, len(moves))
	if len(moves) > 0 {
		fmt.Println(twistcube.FormatMoves(moves))
	}
	fmt.Println()
	fmt.Println(render.Net(cube))
	fmt.Printf("Solved: %v\n", cube.IsSolved())
	return nil
}
