// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/biogo/balance/internal/config"
	"github.com/biogo/balance/internal/render"
	"github.com/biogo/balance/internal/trial"
)

const version = "0.1.0"

// dumpSize is the default workload size for the dump command.
const dumpSize = 16

type options struct {
	path     string
	conf     config.Config
	progress bool
	color    bool
}

func addRunFlags(cmd *cobra.Command, o *options, d config.Config) {
	f := cmd.Flags()
	f.StringVar(&o.path, "config", "", "YAML run configuration file")
	f.IntVar(&o.conf.Trials, "trials", d.Trials, "number of trials")
	f.IntVar(&o.conf.Size, "size", d.Size, "number of values inserted per trial")
	f.Int64Var(&o.conf.Seed, "seed", d.Seed, "random seed (0 for a time based seed)")
	f.IntVar(&o.conf.Workers, "workers", d.Workers, "number of trials run concurrently")
	f.BoolVar(&o.conf.Sorted, "sorted", d.Sorted, "insert values in ascending order")
}

// resolve merges the configuration file named by o.path with the flags that
// were set explicitly on cmd.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(o.path)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("trials") {
		c.Trials = o.conf.Trials
	}
	if f.Changed("size") {
		c.Size = o.conf.Size
	}
	if f.Changed("seed") {
		c.Seed = o.conf.Seed
	}
	if f.Changed("workers") {
		c.Workers = o.conf.Workers
	}
	if f.Changed("sorted") {
		c.Sorted = o.conf.Sorted
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
		log.Printf("using seed %d", c.Seed)
	}
	return c, c.Validate()
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:           "heights",
		Short:         "Compare AVL and Red Black tree heights",
		Long:          "Heights inserts random workloads into an AVL tree and a Red Black tree\nand prints the ratio of the Red Black height to the AVL height for each trial.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return runTrials(cmd, c, o.progress)
		},
	}
	addRunFlags(root, &o, config.Default())
	root.Flags().BoolVar(&o.progress, "progress", false, "show trial progress on stderr")

	root.AddCommand(newDumpCmd(), newVersionCmd())
	return root
}

func runTrials(cmd *cobra.Command, c config.Config, progress bool) error {
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.NewOptions(c.Trials,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("trials"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	out := cmd.OutOrStdout()
	var werr error
	err := trial.Run(cmd.Context(), c, func(r trial.Result) {
		if werr == nil {
			_, werr = fmt.Fprintln(out, r.Ratio())
		}
		if bar != nil {
			bar.Add(1)
		}
	})
	if err != nil {
		return fmt.Errorf("run trials: %w", err)
	}
	if werr != nil {
		return fmt.Errorf("write results: %w", werr)
	}
	return nil
}

func newDumpCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Build one pair of trees and print their nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			if o.path == "" && !cmd.Flags().Changed("size") {
				c.Size = o.conf.Size
			}
			paint := render.Plain
			if o.color {
				paint = render.Styled()
			}
			return dump(cmd.OutOrStdout(), c, paint)
		},
	}
	d := config.Default()
	d.Trials, d.Size = 1, dumpSize
	addRunFlags(cmd, &o, d)
	cmd.Flags().BoolVar(&o.color, "color", false, "highlight red nodes")
	return cmd
}

func dump(w io.Writer, c config.Config, paint render.Painter) error {
	a, rb := trial.Build(trial.Workload(c, 0))
	if err := render.RedBlack(w, rb, paint); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "height %d, black height %d\n\n", rb.Height(), rb.BlackHeight()); err != nil {
		return err
	}
	if err := render.AVL(w, a); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "height %d\n", a.Height())
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the heights version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
