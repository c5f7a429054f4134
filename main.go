// Command maginet runs computer-versus-computer matches of the board game
// and works with shareable level codes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"maginet/engine"
	"maginet/game"
)

func main() {
	cmd := &cli.Command{
		Name:  "maginet",
		Usage: "deterministic engine and search for the mage board game",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "log every turn"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := zerolog.InfoLevel
			if cmd.Bool("debug") {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			playCommand(),
			simulateCommand(),
			codeCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func levelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "level",
		Usage: "level code to play; empty for the standard board",
	}
}

func levelFromFlag(cmd *cli.Command) game.Level {
	code := cmd.String("level")
	if code == "" {
		return game.DefaultLevel()
	}
	return game.LevelFromCode(code)
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run one match between two search agents",
		Flags: []cli.Flag{
			levelFlag(),
			&cli.IntFlag{Name: "depth", Usage: "alpha-beta depth; 0 for automatic PVS"},
			&cli.UintFlag{Name: "red-seed", Value: 1, Usage: "red agent's search seed"},
			&cli.UintFlag{Name: "blue-seed", Value: 2, Usage: "blue agent's search seed"},
			&cli.BoolFlag{Name: "no-stalemate", Usage: "disable the stalemate counter"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			red := engine.Agent{Depth: int(cmd.Int("depth")), Seed: uint64(cmd.Uint("red-seed"))}
			blue := engine.Agent{Depth: int(cmd.Int("depth")), Seed: uint64(cmd.Uint("blue-seed"))}

			e, err := engine.LocalEngine(levelFromFlag(cmd), !cmd.Bool("no-stalemate"), red, blue)
			if err != nil {
				return err
			}

			result, over := e.Run()
			switch {
			case !over:
				fmt.Println("undecided after turn cap")
			case result.Stalemate:
				fmt.Println("stalemate")
			default:
				fmt.Printf("%s wins after %d turns\n", result.Winner, e.Game.Turns())
			}
			return nil
		},
	}
}

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "self-play a batch of games and tally the results",
		Flags: []cli.Flag{
			levelFlag(),
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games"},
			&cli.UintFlag{Name: "seed", Value: 1, Usage: "base search seed"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			games := engine.Simulate(levelFromFlag(cmd), int(cmd.Int("games")), uint64(cmd.Uint("seed")))

			var red, blue, drawn, unfinished int
			for _, g := range games {
				result, over := g.Result()
				switch {
				case !over:
					unfinished++
				case result.Stalemate:
					drawn++
				case result.Winner == game.TeamRed:
					red++
				default:
					blue++
				}
			}

			fmt.Printf("red %d, blue %d, stalemate %d, unfinished %d\n", red, blue, drawn, unfinished)
			return nil
		},
	}
}

func codeCommand() *cli.Command {
	return &cli.Command{
		Name:  "code",
		Usage: "work with shareable level codes",
		Commands: []*cli.Command{
			{
				Name:  "default",
				Usage: "print the standard level's code",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Println(game.DefaultLevel().Code())
					return nil
				},
			},
			{
				Name:      "inspect",
				Usage:     "decode a level code and describe the level",
				ArgsUsage: "<code>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					level := game.LevelFromCode(cmd.Args().First())

					fmt.Printf("board %dx%d, %s to move\n",
						level.Board.Width, level.Board.Height, level.StartingTeam)
					for i := range level.Mages {
						mage := &level.Mages[i]
						fmt.Printf("  %s %s at (%d, %d), %d/%d mana\n",
							mage.Team, mage.Sort, mage.Position.X, mage.Position.Y,
							mage.Mana.Current, mage.Mana.Max)
					}
					for position, powerup := range level.PowerUps {
						fmt.Printf("  %s at (%d, %d)\n", powerup, position.X, position.Y)
					}
					return nil
				},
			},
		},
	}
}
