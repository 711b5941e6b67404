package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expressgen-labs/expressgen/internal/answers"
	"github.com/expressgen-labs/expressgen/internal/branding"
	"github.com/expressgen-labs/expressgen/internal/project"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
)

var (
	createDir         string
	createYes         bool
	createAnswersFile string
	createSkipInstall bool
	createDryRun      bool
)

func init() {
	createCmd.Flags().StringVar(&createDir, "dir", "", "Parent directory for the project (default from config, else .)")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Accept every default without prompting (requires <name>)")
	createCmd.Flags().StringVar(&createAnswersFile, "answers", "", "Read answers from a YAML file instead of prompting")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Do not run npm; write package.json directly")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Print the files and commands without running anything")
	createCmd.MarkFlagsMutuallyExclusive("yes", "answers")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Scaffold a new Express project",
	Long: `Scaffold a new Node/Express project in <dir>/<name>.

Questions are asked interactively unless --yes or --answers is given.

Examples:
  ` + branding.CLIName() + ` create
  ` + branding.CLIName() + ` create shop --yes
  ` + branding.CLIName() + ` create shop --answers answers.yaml --dir ~/src`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, logger, err := settings()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		a, err := collectAnswers(cmd, name)
		if err != nil {
			return err
		}

		parent := s.ParentDir
		if createDir != "" {
			parent = createDir
		}

		runner := &toolchain.ExecRunner{Stdout: cmd.ErrOrStderr(), Stderr: cmd.ErrOrStderr()}
		ini := project.New(toolchain.NewNode(runner, s.NpmBin, s.NpxBin, logger), project.Options{
			ParentDir:   parent,
			Port:        s.Port,
			DBURI:       s.DBURI,
			ClientDir:   s.ClientDir,
			SkipInstall: createSkipInstall,
			DryRun:      createDryRun,
			Logger:      logger,
		})

		result, err := ini.Run(cmd.Context(), a)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderSummary(result))
		return nil
	},
}

// collectAnswers reads answers from the source the flags select: an
// answers file, the defaults, or interactive prompts.
func collectAnswers(cmd *cobra.Command, name string) (answers.Answers, error) {
	if name != "" {
		if err := answers.ValidateProjectName(name); err != nil {
			return answers.Answers{}, err
		}
	}

	switch {
	case createAnswersFile != "":
		return answers.LoadFile(createAnswersFile, name)
	case createYes:
		if name == "" {
			return answers.Answers{}, fmt.Errorf("--yes requires a project name argument")
		}
		return answers.Defaults(name)
	}

	preset := answers.Values{}
	if name != "" {
		preset[answers.KeyProjectName] = name
	}
	p := answers.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	v, err := p.Collect(answers.Questions(), preset)
	if err != nil {
		return answers.Answers{}, err
	}
	return answers.Resolve(v)
}
