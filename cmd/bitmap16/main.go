package main

import (
	"context"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/bitmap16"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const defaultDB = "prefs.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newSession(c *cli.Context) (*bitmap16.BitMap16, error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	base := c.String("workspace")

	file := c.String("db")
	if file == "" {
		file = filepath.Join(base, bitmap16.WorkspaceDir, defaultDB)
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, err
		}
	}

	prefs, err := bitmap16.NewPrefs(file)
	if err != nil {
		return nil, err
	}

	return bitmap16.New(base, prefs, logger), nil
}

func coordinate(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	return n, nil
}

func colorIndex(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad color index %q", s)
	}
	return uint8(n), nil
}

func bindPalette(b *bitmap16.BitMap16, name string) error {
	if err := b.LoadUserPalettes(); err != nil {
		return err
	}

	p, ok := b.Catalog().Find(name)
	if !ok {
		return fmt.Errorf("no palette named %q", name)
	}

	b.Editor().Sketch().BindPalette(p)

	return nil
}

// applyOps runs the edit operations in order against the active sketch.
func applyOps(b *bitmap16.BitMap16, ops []string) error {
	e := b.Editor()

	want := func(i, n int, usage string) error {
		if len(ops)-i < n {
			return fmt.Errorf("%s", usage)
		}
		return nil
	}

	for i := 0; i < len(ops); {
		op := ops[i]
		i++

		switch op {
		case "set", "fill":
			if err := want(i, 3, op+" needs X Y INDEX"); err != nil {
				return err
			}
			x, err := coordinate(ops[i])
			if err != nil {
				return err
			}
			y, err := coordinate(ops[i+1])
			if err != nil {
				return err
			}
			index, err := colorIndex(ops[i+2])
			if err != nil {
				return err
			}
			i += 3

			if op == "set" {
				err = e.Place(x, y, index)
			} else {
				err = e.Fill(x, y, index)
			}
			if err != nil {
				return err
			}
		case "erase":
			if err := want(i, 2, "erase needs X Y"); err != nil {
				return err
			}
			x, err := coordinate(ops[i])
			if err != nil {
				return err
			}
			y, err := coordinate(ops[i+1])
			if err != nil {
				return err
			}
			i += 2

			if err := e.Erase(x, y); err != nil {
				return err
			}
		case "clear":
			e.Clear()
		case "grid":
			e.ToggleGrid()
		case "undo":
			if err := e.Undo(); err != nil {
				return err
			}
		case "palette":
			if err := want(i, 1, "palette needs NAME"); err != nil {
				return err
			}
			name := ops[i]
			i++

			if err := bindPalette(b, name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown operation %q", op)
		}
	}

	return nil
}

func main() {
	// An optional .env can carry the BITMAP16_* variables.
	_ = godotenv.Load()

	app := cli.NewApp()

	app.Name = "bitmap16"
	app.Usage = "BitMap16 DX workspace management utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "workspace",
			EnvVars: []string{"BITMAP16_WORKSPACE"},
			Value:   cwd,
			Usage:   "path to the SD card root",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BITMAP16_DB"},
			Usage:   "path to preference database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "list",
			Usage: "List stored sketches",
			Action: func(c *cli.Context) error {
				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				infos, err := b.Sketches()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, info := range infos {
					fmt.Printf("%-20s %2dx%-2d %2d colors\n", info.Name, info.GridSize, info.GridSize, info.PaletteSize)
				}

				return nil
			},
		},
		{
			Name:  "new",
			Usage: "Create and save a blank sketch",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "grid",
					Value: 16,
					Usage: "grid size, 8 or 16",
				},
				&cli.StringFlag{
					Name:  "palette",
					Usage: "palette to bind, by name",
				},
			},
			Action: func(c *cli.Context) error {
				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				if err := b.Editor().Sketch().SetGridSize(c.Int("grid")); err != nil {
					return cli.NewExitError(err, 1)
				}

				if name := c.String("palette"); name != "" {
					if err := bindPalette(b, name); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				name, err := b.Save()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(name)

				return nil
			},
		},
		{
			Name:        "edit",
			Usage:       "Apply drawing operations to a sketch",
			ArgsUsage:   "FILE OPERATION...",
			Description: "Operations: set X Y INDEX, erase X Y, fill X Y INDEX, clear, grid, palette NAME, undo",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				args := c.Args().Slice()

				if err := b.Open(args[0]); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := applyOps(b, args[1:]); err != nil {
					return cli.NewExitError(err, 1)
				}

				if _, err := b.Save(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export sketches as PNG images",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "logical",
					Usage: "one pixel per cell instead of display size",
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "export every stored sketch",
				},
			},
			Action: func(c *cli.Context) error {
				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				if c.Bool("all") {
					if err := b.ExportAll(context.Background(), c.Bool("logical")); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, name := range c.Args().Slice() {
					out, err := b.Export(name, c.Bool("logical"))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					fmt.Println(out)
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import an image as a new sketch",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				err = b.Import(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				name, err := b.Save()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(name)

				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete stored sketches",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				for _, name := range c.Args().Slice() {
					if err := b.Delete(name); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:  "palettes",
			Usage: "List available palettes",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "size",
					Usage: "only palettes of this size",
				},
				&cli.BoolFlag{
					Name:  "user",
					Usage: "only user palettes",
				},
			},
			Action: func(c *cli.Context) error {
				b, err := newSession(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer b.Close()

				if err := b.LoadUserPalettes(); err != nil {
					return cli.NewExitError(err, 1)
				}

				catalog := b.Catalog()
				catalog.SetFilter(c.Int("size"), c.Bool("user"))

				for _, i := range catalog.Filtered() {
					p := catalog.At(i)
					marker := ""
					if p.User {
						marker = " *"
					}
					fmt.Printf("%-16s %2d colors%s\n", p.Name, p.Size, marker)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
