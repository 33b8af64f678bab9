package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/multitext/cli/cmd"
	"github.com/ardnew/multitext/pkg"
)

// CLI is the top-level command-line interface for multitext.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source string `default:"-" help:"Source document, '-' for stdin. Relative paths not found are searched for in ${searchPath}." placeholder:"PATH" short:"s"`
	Strict bool   `help:"Reject documents whose section marker is blank."`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	List   cmd.List   `cmd:"" default:"withargs" help:"List section names"`
	Get    cmd.Get    `cmd:""                    help:"Print section bodies"`
	Fmt    cmd.Fmt    `cmd:""                    help:"Reformat the document"`
	Env    cmd.Env    `cmd:""                    help:"Print a dotenv section as KEY=value lines"`
	Browse cmd.Browse `cmd:""                    help:"Pick a section interactively"`
	Init   cmd.Init   `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the multitext CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// exits early, for example after printing help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)
	search := searchPath()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"searchPath":         joinSearchPath(search),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure logging before kong so parse errors honor the log flags.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithInput(ctx, cmd.Input{
		Path:   cli.Source,
		Search: search,
		Strict: cli.Strict,
	})

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
