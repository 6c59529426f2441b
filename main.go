package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"spheretrace/app"
	"spheretrace/hal"
	"spheretrace/internal/buildinfo"
	"spheretrace/internal/config"
	"spheretrace/internal/logging"
	"spheretrace/internal/tracer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/stat"
)

type cli struct {
	cfgFile string
	cfg     config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "spheretrace",
		Short:         "Real-time ray-traced sphere viewer",
		Long:          "spheretrace renders a single sphere against a sky gradient.\nHold W to move the camera up, R to move it down, Escape to quit.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindow()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default ./spheretrace.yaml or $HOME/.spheretrace/spheretrace.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Bool("parallel", false, "render rows on multiple goroutines")
	pf.Int("workers", 0, "parallel render workers (0 = GOMAXPROCS)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.New(c.cfgFile)
		if err != nil {
			return err
		}
		if err := bindFlags(v, cmd); err != nil {
			return err
		}
		if c.cfg, err = config.Load(v); err != nil {
			return err
		}
		l, err := logging.New(c.cfg.Log.Level, os.Stderr)
		if err != nil {
			return err
		}
		logging.Set(l)
		if f := v.ConfigFileUsed(); f != "" {
			logging.L().Info("config loaded", "file", f)
		}
		return nil
	}

	root.AddCommand(
		c.runCmd(),
		c.headlessCmd(),
		c.benchCmd(),
		versionCmd(),
	)
	return root
}

// bindFlags lets command-line flags override file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, flag := range map[string]string{
		"log.level":       "log-level",
		"render.parallel": "parallel",
		"render.workers":  "workers",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func (c *cli) appConfig() app.Config {
	return app.Config{
		Camera:   c.cfg.TracerOptions(),
		Parallel: c.cfg.Render.Parallel,
		Workers:  c.cfg.Render.Workers,
		Step:     c.cfg.Input.Step,
		HUD:      c.cfg.Window.HUD,
	}
}

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the viewer window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindow()
		},
	}
}

func (c *cli) runWindow() error {
	acfg := c.appConfig()
	cam, err := tracer.NewCamera(acfg.Camera)
	if err != nil {
		return err
	}
	return hal.RunWindow(hal.WindowConfig{
		Width:  cam.ImageWidth,
		Height: cam.ImageHeight,
		Scale:  c.cfg.Window.Scale,
		TPS:    c.cfg.Window.TPS,
	}, func(h hal.HAL) (func() error, error) {
		a, err := app.New(h, acfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	})
}

func (c *cli) headlessCmd() *cobra.Command {
	var hz int
	var ticks uint64
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the viewer loop without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			acfg := c.appConfig()
			cam, err := tracer.NewCamera(acfg.Camera)
			if err != nil {
				return err
			}
			err = hal.RunHeadless(ctx, func(h hal.HAL) (func() error, error) {
				a, err := app.New(h, acfg)
				if err != nil {
					return nil, err
				}
				return func() error { return a.StepContext(ctx) }, nil
			}, hal.HeadlessConfig{
				Width:  cam.ImageWidth,
				Height: cam.ImageHeight,
				Hz:     hz,
				Ticks:  ticks,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 60, "tick rate")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N ticks (0 = run until interrupted)")
	return cmd
}

func (c *cli) benchCmd() *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sequential and parallel frame renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1")
			}
			cam, err := tracer.NewCamera(c.cfg.TracerOptions())
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), cmd, cam, frames, c.cfg.Render.Workers)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 50, "frames to render per mode")
	return cmd
}

func runBench(ctx context.Context, cmd *cobra.Command, cam tracer.Camera, frames, workers int) error {
	seq := make([]byte, cam.FrameBytes())
	par := make([]byte, cam.FrameBytes())
	seqMs := make([]float64, 0, frames)
	parMs := make([]float64, 0, frames)

	for i := 0; i < frames; i++ {
		start := time.Now()
		if err := cam.Render(seq); err != nil {
			return err
		}
		seqMs = append(seqMs, msSince(start))

		start = time.Now()
		if err := cam.RenderParallel(ctx, par, workers); err != nil {
			return err
		}
		parMs = append(parMs, msSince(start))

		if !bytes.Equal(seq, par) {
			return fmt.Errorf("frame %d: parallel render differs from sequential", i)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%dx%d, %d frames\n", cam.ImageWidth, cam.ImageHeight, frames)
	fmt.Fprintf(out, "sequential: mean %.3f ms, stddev %.3f ms\n", stat.Mean(seqMs, nil), stat.StdDev(seqMs, nil))
	fmt.Fprintf(out, "parallel:   mean %.3f ms, stddev %.3f ms\n", stat.Mean(parMs, nil), stat.StdDev(parMs, nil))
	return nil
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
