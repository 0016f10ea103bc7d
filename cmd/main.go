// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"strings"

	"code.gitea.io/transprune/modules/log"
	"code.gitea.io/transprune/modules/setting"

	"github.com/urfave/cli/v2"
)

// cmdHelp is our own help subcommand with more information
// Keep in mind that the "./transprune help"(subcommand) is different from "./transprune --help"(flag), the flag doesn't parse the config or output "DEFAULT CONFIGURATION:" information
func cmdHelp() *cli.Command {
	c := &cli.Command{
		Name:      "help",
		Aliases:   []string{"h"},
		Usage:     "Shows a list of commands or help for one command",
		ArgsUsage: "[command]",
		Action: func(c *cli.Context) (err error) {
			lineage := c.Lineage() // The order is from child to parent: help, [command,] transprune
			if c.Args().Present() {
				err = cli.ShowCommandHelp(c, c.Args().First())
			} else if len(lineage) > 1 && lineage[1].Command != nil && lineage[1].Command.Name != c.App.Name && lineage[1].Command.Name != "" {
				err = cli.ShowCommandHelp(c, lineage[1].Command.Name)
			} else {
				err = cli.ShowAppHelp(c)
			}
			if err == nil {
				_, _ = fmt.Fprintf(c.App.Writer, `
DEFAULT CONFIGURATION:
   WorkPath:   %s
   ConfigFile: %s
   Strategy:   %s
   Files:      %s

`, setting.AppWorkPath, setting.CustomConf, setting.Prune.Strategy, setting.PruneFilesString())
			}
			return err
		},
	}
	return c
}

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		// make the builtin flags at the top
		cli.HelpFlag,

		// shared configuration flags, they are for global and for each sub-command at the same time
		// eg: such command is valid: "./transprune --config /tmp/a.ini clean --config /tmp/a.ini", while it's discouraged indeed
		// keep in mind that the short flags like "-c" and "-w" are globally polluted, they can't be used for sub-commands anymore.
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Set config file (defaults to '{WorkPath}/" + setting.DefaultConfigFileName + "')",
		},
		&cli.StringFlag{
			Name:    "work-path",
			Aliases: []string{"w"},
			Usage:   "Set the working path, relative files are resolved against it (defaults to the current directory)",
		},
	}
}

func prepareSubcommandWithConfig(command *cli.Command, globalFlags []cli.Flag) {
	command.Flags = append(append([]cli.Flag{}, globalFlags...), command.Flags...)
	command.Action = prepareWorkPathAndCustomConf(command.Action)
	command.HideHelp = true
	if command.Name != "help" {
		command.Subcommands = append(command.Subcommands, cmdHelp())
	}
	for i := range command.Subcommands {
		prepareSubcommandWithConfig(command.Subcommands[i], globalFlags)
	}
}

// prepareWorkPathAndCustomConf wraps the Action to prepare the work path and config, then sets up the console logger
func prepareWorkPathAndCustomConf(action cli.ActionFunc) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		var args setting.ArgWorkPathAndCustomConf
		// from children to parent, check the global flags
		for _, curCtx := range ctx.Lineage() {
			if curCtx.IsSet("work-path") && args.WorkPath == "" {
				args.WorkPath = curCtx.String("work-path")
			}
			if curCtx.IsSet("config") && args.CustomConf == "" {
				args.CustomConf = curCtx.String("config")
			}
		}
		if err := setting.InitWorkPathAndCommonConfig(os.Getenv, args); err != nil {
			return err
		}
		setupConsoleLogger(ctx)
		if ctx.Bool("help") || action == nil {
			// the default action for the "help" command
			return cli.ShowSubcommandHelp(ctx)
		}
		return action(ctx)
	}
}

func setupConsoleLogger(ctx *cli.Context) {
	level := setting.Log.Level
	if ctx.Bool("quiet") {
		level = log.ERROR
	} else if ctx.Bool("verbose") {
		level = log.DEBUG
	}
	log.SetConsoleLogger(log.DEFAULT, ctx.App.ErrWriter, log.WriterMode{
		Level:    level,
		Flags:    setting.Log.Flags,
		Colorize: setting.Log.Colorize && ctx.App.ErrWriter == os.Stderr && log.CanColorStderr,
	})
}

type AppVersion struct {
	Version string
	Extra   string
}

func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "transprune" // must be lower-cased because it appears in the "USAGE" section
	app.Usage = "Remove placeholder records from translation tables"
	app.Description = `transprune scans Dart-like translation tables and removes the records whose attribute is still set to the placeholder marker ('translation': 'Unknown' by default). Use "verify" to see what would be removed without touching any file.`
	app.Version = appVer.Version + appVer.Extra
	app.EnableBashCompletion = true

	// these sub-commands need to use config file
	subCmdWithConfig := []*cli.Command{
		cmdHelp(), // the "help" sub-command was used to show the more information for "work path" and "config file"
		cmdClean(),
		cmdVerify(),
	}

	// these sub-commands do not need the config file, and they do not depend on any path or environment variable.
	subCmdStandalone := []*cli.Command{
		CmdDocs,
	}

	app.Flags = append(app.Flags, cli.VersionFlag)
	app.Flags = append(app.Flags, appGlobalFlags()...)
	app.HideHelp = true // use our own help action to show helps (with more information like default config)
	for i := range subCmdWithConfig {
		prepareSubcommandWithConfig(subCmdWithConfig[i], appGlobalFlags())
	}
	app.Commands = append(app.Commands, subCmdWithConfig...)
	app.Commands = append(app.Commands, subCmdStandalone...)
	return app
}

func RunMainApp(app *cli.App, args ...string) error {
	ctx, cancel := installSignals()
	defer cancel()
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
