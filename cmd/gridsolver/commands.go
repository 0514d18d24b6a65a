package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/boardio"
	"svw.info/gridsolver/internal/domain"
)

func readBoard(path string) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return boardio.Parse(string(data))
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <board-file>",
		Short: "Solve a board read from a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args[0])
			if err != nil {
				return err
			}
			out, st, err := a.svc.Solve(cmd.Context(), b)
			if err != nil {
				return err
			}
			a.logger.Info("solved",
				"stage", st.Stage.String(),
				"placements", st.Placements,
				"iterations", st.Iterations,
				"dur", st.Duration,
			)
			fmt.Print(boardio.Render(out))
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <board-file>",
		Short: "Validate a board and report conflicting cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args[0])
			if err != nil {
				return err
			}
			ok, conflicts, err := a.svc.Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				for _, idx := range conflicts {
					fmt.Printf("conflict at row %d col %d\n", domain.RowOf(idx), domain.ColOf(idx))
				}
				return fmt.Errorf("board is contradictory (%d conflicts)", len(conflicts))
			}
			fmt.Println("board is valid")
			return nil
		},
	}
}

func newReduceCmd(a *app) *cobra.Command {
	var removals int
	cmd := &cobra.Command{
		Use:   "reduce <board-file>",
		Short: "Clear random cells from a solved board to make a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args[0])
			if err != nil {
				return err
			}
			n := removals
			if n == 0 {
				n = a.cfg.Removals
			}
			out, err := a.svc.Reduce(cmd.Context(), b, n)
			if err != nil {
				return err
			}
			a.logger.Info("reduced", "removals", n, "givens", out.CountGivens())
			fmt.Print(boardio.Render(out))
			return nil
		},
	}
	cmd.Flags().IntVarP(&removals, "removals", "n", 0, "cells to clear (default from config)")
	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed     int64
		removals int
		save     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := removals
			if n == 0 {
				n = a.cfg.Removals
			}
			p, st, err := a.svc.Generate(cmd.Context(), seed, n)
			if err != nil {
				return err
			}
			a.logger.Info("generated",
				"id", p.ID,
				"seed", p.Seed,
				"givens", p.Givens,
				"dur", st.Duration,
			)
			if save {
				if err := a.svc.Save(cmd.Context(), p); err != nil {
					return err
				}
				a.logger.Info("saved", "id", p.ID, "dir", a.cfg.DataDir)
			}
			fmt.Print(boardio.Render(&p.Board))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "generation seed")
	cmd.Flags().IntVarP(&removals, "removals", "n", 0, "cells to clear (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the puzzle as JSON")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := a.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range metas {
				name := m.Name
				if name == "" {
					name = "-"
				}
				fmt.Printf("%s  givens=%d  name=%s\n", m.ID, m.Givens, name)
			}
			return nil
		},
	}
}
