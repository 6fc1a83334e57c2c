package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameSkipCmd())
	cmd.AddCommand(newGameRackCmd())
	cmd.AddCommand(newGameAbandonCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Start a new game in the lobby (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result GameState

			if err := client.Get(fmt.Sprintf("/api/v1/lobbies/%s/game", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <code> <word> <row> <col> <direction>",
		Short: "Place a word on the board",
		Long: `Place a word starting at the given row and column.

Direction is "right" (left to right) or "down" (top to bottom).
Letters already on the board count towards the word; the rest
must come from your rack.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			word := strings.ToUpper(args[1])

			row, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			direction := strings.ToLower(args[4])

			req := map[string]any{
				"word":      word,
				"row":       row,
				"col":       col,
				"direction": direction,
			}
			var result PlaceResult

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game/place", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <code>",
		Short: "Skip your turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game/skip", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rack",
		Short: "Rack commands",
	}

	cmd.AddCommand(newGameRackShuffleCmd())
	cmd.AddCommand(newGameRackRenewCmd())

	return cmd
}

func newGameRackShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <code>",
		Short: "Shuffle the tiles on your rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game/rack/shuffle", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRackRenewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renew <code>",
		Short: "Return your rack to the supply and draw a fresh one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game/rack/renew", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <code>",
		Short: "Abandon the current game (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/lobbies/%s/game", code)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}
