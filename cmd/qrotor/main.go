/*
 * main.go, part of goAton.
 *
 * Copyright 2024 The goAton authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command qrotor solves the quantum rotations of methyl-like groups, and prepares the
// rotated Quantum ESPRESSO structures used to compute their potentials.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	aton "github.com/rmera/goaton"
	"github.com/rmera/goaton/qrotor"
	"github.com/rmera/goaton/st"
	"github.com/rmera/goaton/txt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	//solve
	output string
	method string
	cpus   int

	//rotate
	positions []string
	angle     float64
	repeat    bool
	precision int
	showAxis  bool
)

var rootCmd = &cobra.Command{
	Use:   "qrotor",
	Short: "Energy levels of quantum rotors",
	Long: `qrotor solves the 1D Schrödinger equation for the rotation of groups such as
methyls, on a periodic grid, for the potentials described in a TOML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config = zap.NewDevelopmentConfig()
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		aton.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = aton.L().Sync()
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <config.toml>",
	Short: "Solve the systems described in a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var potentialCmd = &cobra.Command{
	Use:   "potential <config.toml> <folder>",
	Short: "Write the potential of each system in a TOML file to a folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runPotential,
}

var showCmd = &cobra.Command{
	Use:   "show <file.aton>",
	Short: "Print the results saved by solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <pw.in>",
	Short: "Rotate atoms of a Quantum ESPRESSO input",
	Long: `Rotates the atoms found at the given positions (at least three, in the units of
the ATOMIC_POSITIONS card) around the normal to the plane of the first three, through
their center. Each rotated structure is written next to the input.`,
	Example: `  qrotor rotate pw.in -p 0.60,0.50,0.46 -p 0.45,0.59,0.46 -p 0.45,0.41,0.46 --angle 10 --repeat`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRotate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	solveCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: from the config)")
	solveCmd.Flags().StringVar(&method, "method", "", "Diagonalization method: auto, dense or subspace (default: from the config)")
	solveCmd.Flags().IntVar(&cpus, "cpus", 0, "Systems solved at the same time (default: from the config)")

	rotateCmd.Flags().StringArrayVarP(&positions, "position", "p", nil, "Approximate position of an atom to rotate, as x,y,z")
	rotateCmd.Flags().Float64Var(&angle, "angle", 10, "Rotation angle, in degrees")
	rotateCmd.Flags().BoolVar(&repeat, "repeat", false, "Repeat the rotation over the whole circumference")
	rotateCmd.Flags().IntVar(&precision, "precision", 3, "Decimals used to match the positions")
	rotateCmd.Flags().BoolVar(&showAxis, "show-axis", false, "Add two He atoms marking the rotation axis")
	rotateCmd.MarkFlagRequired("position")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(potentialCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rotateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printExperiment(w io.Writer, exp *qrotor.Experiment) {
	fmt.Fprintf(w, "# %s\n", exp.Comment)
	for _, S := range exp.Systems {
		fmt.Fprint(w, S.String())
		if !S.Converged {
			fmt.Fprintln(w, "  WARNING: not all levels converged")
		}
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("method") {
		if cfg.Options.Method, err = parseMethod(method); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("cpus") {
		cfg.Options.CPUs = cpus
	}
	exp, err := qrotor.Energies(context.Background(), cfg.Experiment, cfg.Options, cfg.Output)
	if err != nil {
		return err
	}
	printExperiment(cmd.OutOrStdout(), exp)
	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", st.Filename(cfg.Output))
	}
	return nil
}

func runPotential(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(args[1], 0o755); err != nil {
		return err
	}
	for i, S := range cfg.Experiment.Systems {
		if err := qrotor.Potential(S); err != nil {
			return err
		}
		name := filepath.Join(args[1], fmt.Sprintf("potential_%d.dat", i+1))
		if err := qrotor.SavePotential(name, S); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	var exp qrotor.Experiment
	if err := st.Load(args[0], &exp); err != nil {
		return err
	}
	printExperiment(cmd.OutOrStdout(), &exp)
	return nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	pos := make([][]float64, 0, len(positions))
	for _, p := range positions {
		c := txt.Coords(p)
		if len(c) != 3 {
			return fmt.Errorf("bad position %q, expected x,y,z", p)
		}
		pos = append(pos, c)
	}
	outs, err := qrotor.RotateQE(args[0], pos, angle, repeat, precision, showAxis)
	if err != nil {
		return err
	}
	for _, o := range outs {
		fmt.Fprintln(cmd.OutOrStdout(), o)
	}
	return nil
}
