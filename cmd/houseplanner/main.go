package main

import (
	"os"

	"github.com/ChicagoDave/houseplanner/internal/server"
	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "houseplanner",
		Short:        "Parametric house configurator: wall opening capacity and layout",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(capacityCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// wallFlags describe a wall surface on the command line.
type wallFlags struct {
	anchor geo.Vec3
	size   geo.Size3
}

func (f *wallFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.anchor.X, "x", 0, "wall anchor X (m)")
	cmd.Flags().Float64Var(&f.anchor.Y, "y", 0, "wall anchor Y (m)")
	cmd.Flags().Float64Var(&f.anchor.Z, "z", 0, "wall anchor Z (m)")
	cmd.Flags().Float64VarP(&f.size.Width, "wall-width", "W", 8, "wall width (m)")
	cmd.Flags().Float64VarP(&f.size.Height, "wall-height", "H", 2.5, "wall height (m)")
	cmd.Flags().Float64Var(&f.size.Depth, "wall-depth", 0.2, "wall thickness (m)")
}

func (f *wallFlags) wall() opening.Wall {
	return opening.Wall{Anchor: f.anchor, Size: f.size}
}

func registerParams(cmd *cobra.Command, p *opening.Params) {
	cmd.Flags().Float64VarP(&p.Width, "width", "w", opening.DefaultOpeningWidth, "opening width (m)")
	cmd.Flags().Float64VarP(&p.Spacing, "spacing", "s", opening.DefaultSpacing, "spacing between openings (m)")
	cmd.Flags().Float64Var(&p.Height, "height", opening.DefaultOpeningHeight, "opening height (m)")
}

func validateCmd() *cobra.Command {
	var wallName string

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate house.yaml and check every wall's opening request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], wallName)
		},
	}

	cmd.Flags().StringVar(&wallName, "wall", "", "only report findings for the named wall")
	return cmd
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [project-path]",
		Short: "Lay out openings on every wall and print the plan as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0])
		},
	}
}

func capacityCmd() *cobra.Command {
	var (
		wf     wallFlags
		params opening.Params
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Compute how many openings fit on a wall",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCapacity(wf.wall(), params, asJSON)
		},
	}

	wf.register(cmd)
	registerParams(cmd, &params)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		wf     wallFlags
		params opening.Params
		count  int
		color  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a row of windows on a wall and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(wf.wall(), params, count, color)
		},
	}

	wf.register(cmd)
	registerParams(cmd, &params)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of openings")
	cmd.Flags().StringVar(&color, "color", "#87ceeb", "opening color (#rrggbb or 0xrrggbb)")
	return cmd
}

func optimizeCmd() *cobra.Command {
	var (
		wf     wallFlags
		count  int
		height float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Derive opening width and spacing for a target count",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runOptimize(wf.wall(), count, height, asJSON)
		},
	}

	wf.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 3, "desired number of openings")
	cmd.Flags().Float64Var(&height, "height", opening.DefaultOpeningHeight, "opening height (m)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local JSON API for the configurator front end",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
