// SPDX-License-Identifier: MIT

// Command microstates computes protonation-state probabilities of a
// titratable system described in a YAML model file.
//
//	microstates probabilities --model m.yaml --ph 7 --temperature 300
//	microstates substate --model m.yaml --site PRTA:GLU:35 --site PRTA:61 [--absolute]
//
// MICROSTATES_PH and MICROSTATES_TEMPERATURE override the defaults when the
// flags are not given.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/microstate/model"
	"github.com/katalvlaran/microstate/statevector"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// conditionFlags are shared by every command.
func conditionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "model",
			Aliases:  []string{"m"},
			Usage:    "YAML file describing sites, instances and interactions",
			Required: true,
		},
		&cli.Float64Flag{
			Name:    "ph",
			Value:   statevector.DefaultPH,
			Usage:   "pH of the calculation",
			EnvVars: []string{"MICROSTATES_PH"},
		},
		&cli.Float64Flag{
			Name:    "temperature",
			Aliases: []string{"t"},
			Value:   statevector.DefaultTemperature,
			Usage:   "temperature in Kelvin",
			EnvVars: []string{"MICROSTATES_TEMPERATURE"},
		},
	}
}

// loadAndSolve reads the model and computes probabilities at the requested conditions.
func loadAndSolve(c *cli.Context) (*model.Model, statevector.Conditions, error) {
	cond := statevector.Conditions{PH: c.Float64("ph"), Temperature: c.Float64("temperature")}
	if err := cond.Validate(); err != nil {
		return nil, cond, err
	}
	m, err := model.LoadFile(c.String("model"))
	if err != nil {
		return nil, cond, err
	}

	start := time.Now()
	if err = m.CalculateProbabilities(cond); err != nil {
		return nil, cond, err
	}
	log.Printf("enumerated %d sites (%d instances) at pH %g in %s",
		len(m.Sites), m.NumInstances(), cond.PH, time.Since(start))

	return m, cond, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "microstates",
		Usage: "exhaustive protonation-state probabilities of titratable sites",
		Commands: []*cli.Command{
			{
				Name:  "probabilities",
				Usage: "print the probability of every instance of every site",
				Flags: conditionFlags(),
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					m, _, err := loadAndSolve(c)
					if err != nil {
						return err
					}
					return m.SummaryProbabilities(c.App.Writer)
				},
			},
			{
				Name:  "substate",
				Usage: "list every combination of the selected sites by energy, other sites at their most probable instance",
				Flags: append(conditionFlags(),
					&cli.StringSliceFlag{
						Name:     "site",
						Aliases:  []string{"s"},
						Usage:    "site to enumerate as SEGMENT:RESIDUE:SERIAL or SEGMENT:SERIAL (repeatable)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "absolute",
						Usage: "print absolute instead of relative energies",
					},
				),
				Action: func(c *cli.Context) error {
					var keys []model.SiteKey
					for _, s := range c.StringSlice("site") {
						k, err := model.ParseSiteKey(s)
						if err != nil {
							return err
						}
						keys = append(keys, k)
					}
					m, cond, err := loadAndSolve(c)
					if err != nil {
						return err
					}
					sub, err := m.NewSubstate(keys, cond)
					if err != nil {
						return err
					}
					if err = sub.Calculate(); err != nil {
						return err
					}
					return sub.Summary(c.App.Writer, !c.Bool("absolute"))
				},
			},
		},
	}
}
